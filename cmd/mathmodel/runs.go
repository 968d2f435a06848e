package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/mathmodel/internal/config"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "inspect recorded runs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list runs",
			RunE:  listRuns,
		},
		&cobra.Command{
			Use:   "show [run_id]",
			Short: "print run metadata",
			Args:  cobra.ExactArgs(1),
			RunE:  showRun,
		},
		&cobra.Command{
			Use:   "plot [run_id]",
			Short: "plot the stored states of a run",
			Args:  cobra.ExactArgs(1),
			RunE:  plotRun,
		},
	)
	return cmd
}

func listRuns(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			run.ID,
			run.Kind,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			strings.Join(run.Artifacts, " "),
		}
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "KIND", "NAME", "TIME", "ARTIFACTS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})
	fmt.Println(t.Render())
	return nil
}

func showRun(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotRun(_ *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	states, _, err := st.LoadStates(args[0])
	if err != nil {
		return err
	}
	if len(states) == 0 {
		return fmt.Errorf("run %s has no stored states", meta.ID)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("%s: %s\n", meta.Kind, meta.Name)
	fmt.Printf("samples: %d\n\n", len(states))

	for i := 0; i < min(len(states[0]), 6); i++ {
		data := make([]float64, len(states))
		for k, s := range states {
			if i < len(s) {
				data[k] = s[i]
			}
		}
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s vs time", componentName(i))),
		))
		fmt.Println()
	}
	return nil
}

func componentName(i int) string {
	if i < 3 {
		return string(rune('x' + i))
	}
	return fmt.Sprintf("x%d", i)
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [kind]",
		Short: "list presets (fractal, animation, attractor)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kinds := config.Kinds()
			if len(args) == 1 {
				if config.ListPresets(args[0]) == nil {
					return unknown("preset kind", args[0], kinds)
				}
				kinds = args
			}
			sort.Strings(kinds)
			for _, kind := range kinds {
				fmt.Printf("%s presets:\n", kind)
				for _, p := range config.ListPresets(kind) {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}
}
