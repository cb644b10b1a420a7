package cli

import (
	"fmt"

	"github.com/alexanderramin/tasktimer/internal/cli/formatter"
	"github.com/alexanderramin/tasktimer/internal/config"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage task categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryAddCmd(app),
		newCategoryRemoveCmd(app),
		newCategoryResetCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List valid categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := make(map[string]bool, len(config.DefaultCategories))
			for _, d := range config.DefaultCategories {
				defaults[d] = true
			}

			for _, c := range app.Categories.All() {
				if defaults[c] {
					fmt.Printf("%s %s\n", formatter.CategoryBadge(c), formatter.Dim("(default)"))
				} else {
					fmt.Println(formatter.CategoryBadge(c))
				}
			}
			return nil
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.Categories.Add(args[0])
			if err != nil {
				return err
			}
			if !added {
				fmt.Printf("Category %q already exists\n", args[0])
				return nil
			}
			fmt.Println(formatter.Success(fmt.Sprintf("Added category %q", args[0])))
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Categories.Remove(args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("Category %q is not a removable custom category\n", args[0])
				return nil
			}
			fmt.Println(formatter.Success(fmt.Sprintf("Removed category %q", args[0])))
			return nil
		},
	}
}

func newCategoryResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove all custom categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Categories.Reset(); err != nil {
				return err
			}
			fmt.Println(formatter.Success("Categories reset to defaults"))
			return nil
		},
	}
}
