package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/extract"
	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	Short:   "Manage product catalogs",
	GroupID: "commerce",
	Aliases: []string{"catalogs", "cat"},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an empty catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalog, err := s.AddCatalog(args[0], nil)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED catalog %s (%s)\n", catalog.Name, catalog.ID)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List catalogs",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalogs, err := s.Catalogs()
		if err != nil {
			output.Error("failed to list catalogs: %v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(catalogs)
		}

		if len(catalogs) == 0 {
			fmt.Println("No catalogs.")
			return nil
		}

		for _, c := range catalogs {
			fmt.Printf("%s  %-24s %d product(s)  %s\n",
				c.ID, c.Name, len(c.Products), output.Subtle(output.FormatTimeAgo(c.CreatedAt)))
		}
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id|name>",
	Short: "Show a catalog's products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalog, err := s.GetCatalog(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(catalog)
		}

		fmt.Println(output.Bold(catalog.Name))
		if len(catalog.Products) == 0 {
			fmt.Println(output.Subtle("  (empty)"))
			return nil
		}
		for _, p := range catalog.Products {
			line := fmt.Sprintf("  %-28s %8s", p.Name, output.FormatMoney(p.Price))
			if p.SKU != "" {
				line += "  " + output.Subtle(p.SKU)
			}
			fmt.Println(line)
			if p.Description != "" {
				fmt.Println("    " + output.Subtle(p.Description))
			}
		}
		return nil
	},
}

var catalogAddProductCmd = &cobra.Command{
	Use:   "add-product <catalog> <name> <price>",
	Short: "Add a product to a catalog",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalog, err := s.GetCatalog(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		var price float64
		if _, err := fmt.Sscanf(args[2], "%f", &price); err != nil || price < 0 {
			err := fmt.Errorf("invalid price: %q", args[2])
			output.Error("%v", err)
			return err
		}

		desc, _ := cmd.Flags().GetString("description")
		sku, _ := cmd.Flags().GetString("sku")
		product := models.Product{Name: args[1], Price: price, Description: desc, SKU: sku}

		if err := s.AddProduct(catalog.ID, product); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s to %s\n", args[1], catalog.Name)
		return nil
	},
}

var catalogExtractCmd = &cobra.Command{
	Use:   "extract <catalog> <file>",
	Short: "Extract products from price-list text",
	Long: `Extract products from a price-list text file and add them to a catalog.
Needs GEMINI_API_KEY in the environment or a .env file. Extraction is
best-effort; when nothing can be extracted, add products manually with
'cn catalog add-product'.

Examples:
  cn catalog extract "Spring 2026" pricelist.txt
  cn catalog extract "Spring 2026" pricelist.txt --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[1])
		if err != nil {
			output.Error("cannot read %s: %v", args[1], err)
			return err
		}

		client, err := extract.NewClient(cmd.Context(), os.Getenv("GEMINI_API_KEY"), os.Getenv("CN_EXTRACT_MODEL"))
		if err != nil {
			output.Error("%v", err)
			return err
		}

		extracted, err := client.ExtractProducts(cmd.Context(), string(text))
		if err != nil {
			output.Error("%v", err)
			output.Info("Add products manually with 'cn catalog add-product'.")
			return err
		}

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			for _, p := range extracted {
				fmt.Printf("  %-28s %8s  %s\n", p.Name, output.FormatMoney(p.Price), output.Subtle(p.SKU))
			}
			output.Info("%d product(s) extracted (dry run, nothing saved)", len(extracted))
			return nil
		}

		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalog, err := s.GetCatalog(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		for _, p := range extracted {
			product := models.Product{Name: p.Name, Price: p.Price, Description: p.Description, SKU: p.SKU}
			if err := s.AddProduct(catalog.ID, product); err != nil {
				output.Error("failed to add %q: %v", p.Name, err)
				return err
			}
		}

		output.Success("Added %d product(s) to %s", len(extracted), catalog.Name)
		return nil
	},
}

var catalogDeleteCmd = &cobra.Command{
	Use:   "delete <id|name>",
	Short: "Delete a catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		catalog, err := s.GetCatalog(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if err := s.DeleteCatalog(catalog.ID); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s\n", catalog.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogAddProductCmd)
	catalogCmd.AddCommand(catalogExtractCmd)
	catalogCmd.AddCommand(catalogDeleteCmd)

	catalogListCmd.Flags().Bool("json", false, "JSON output")
	catalogShowCmd.Flags().Bool("json", false, "JSON output")

	catalogAddProductCmd.Flags().String("description", "", "Product description")
	catalogAddProductCmd.Flags().String("sku", "", "Product SKU")

	catalogExtractCmd.Flags().Bool("dry-run", false, "Print extracted products without saving")
}
