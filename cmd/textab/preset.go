package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/textab/textab"
)

var (
	presetDir         string
	presetDescription string
	presetTags        []string
	presetImportName  string
	presetLoadOutput  string
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored table presets",
	Long: `Preset commands keep reusable table documents in a per-user store,
one JSON file per preset.`,
}

func init() {
	presetCmd.PersistentFlags().StringVar(&presetDir, "dir", "",
		"Preset directory (default from config)")

	presetSaveCmd.Flags().StringVar(&presetDescription, "description", "", "Preset description")
	presetSaveCmd.Flags().StringSliceVar(&presetTags, "tags", nil, "Comma-separated tags")
	presetLoadCmd.Flags().StringVarP(&presetLoadOutput, "output", "o", "", "Output file (default stdout)")
	presetImportCmd.Flags().StringVar(&presetImportName, "name", "", "Store under this name instead of the file name")

	presetCmd.AddCommand(presetListCmd, presetShowCmd, presetSaveCmd, presetLoadCmd,
		presetDeleteCmd, presetRenameCmd, presetSearchCmd, presetImportCmd, presetExportCmd)
	rootCmd.AddCommand(presetCmd)
}

func openStore() (*textab.PresetStore, error) {
	dir := presetDir
	if dir == "" {
		dir = cfg.PresetDir
	}
	return textab.NewPresetStore(dir)
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no presets stored in", store.Dir())
			return nil
		}
		printPresetInfos(infos)
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset's metadata and layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		info, err := store.Info(args[0])
		if err != nil {
			return err
		}
		g, err := store.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("name: %s\n", info.Name)
		if info.Description != "" {
			fmt.Printf("description: %s\n", info.Description)
		}
		if len(info.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(info.Tags, ", "))
		}
		fmt.Printf("modified: %s\n\n", info.Modified.Format("2006-01-02 15:04"))
		fmt.Print(g.Describe())
		return nil
	},
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name> [document]",
	Short: "Store a table document as a preset",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		g, err := loadGridArg(argOrDash(args[1:]))
		if err != nil {
			return err
		}
		if err := store.Save(g, args[0], presetDescription, presetTags); err != nil {
			return err
		}
		fmt.Printf("saved preset %q\n", args[0])
		return nil
	},
}

var presetLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Write a preset's table document to stdout or a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		g, err := store.Load(args[0])
		if err != nil {
			return err
		}
		out, err := openOutput(presetLoadOutput)
		if err != nil {
			return err
		}
		defer out.Close()
		return textab.WriteGrid(g, out)
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted preset %q\n", args[0])
		return nil
	},
}

var presetRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a stored preset",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Rename(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("renamed preset %q to %q\n", args[0], args[1])
		return nil
	},
}

var presetSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search presets by name, description, or tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		infos, err := store.Search(args[0])
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no presets match", args[0])
			return nil
		}
		printPresetInfos(infos)
		return nil
	},
}

var presetImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Copy a preset file into the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.Import(args[0], presetImportName)
	},
}

var presetExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Copy a stored preset out of the store",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return store.Export(args[0], args[1])
	},
}

func printPresetInfos(infos []textab.PresetInfo) {
	for _, info := range infos {
		line := fmt.Sprintf("%-20s %s", info.Name, info.Modified.Format("2006-01-02 15:04"))
		if info.Description != "" {
			line += "  " + info.Description
		}
		if len(info.Tags) > 0 {
			line += "  [" + strings.Join(info.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
}
