package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/output"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/suggest"
	"github.com/marcus/cn/internal/timeparse"
	"github.com/marcus/cn/internal/views"
)

var orderCmd = &cobra.Command{
	Use:     "order",
	Short:   "Track customer orders",
	GroupID: "commerce",
	Aliases: []string{"orders"},
}

var orderAddCmd = &cobra.Command{
	Use:   "add <contact>",
	Short: "Add an order",
	Long: `Add an order for a contact. Items are given as name:price:quantity,
repeatable. Items with quantity zero are dropped.

Examples:
  cn order add "Maria Santos" --item "Ceramic mug:12.50:20"
  cn order add ct-1756712345678 --item "Widget:3.99:10" --item "Gadget:15:2" --notes "Deliver Friday"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		contact, err := s.FindContact(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		itemFlags, _ := cmd.Flags().GetStringArray("item")
		items := make([]models.OrderItem, 0, len(itemFlags))
		for _, spec := range itemFlags {
			item, err := parseOrderItem(spec)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			items = append(items, item)
		}

		notes, _ := cmd.Flags().GetString("notes")
		order, err := s.AddOrder(contact.ID, contact.Name, items, notes)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("ADDED %s for %s, total %s\n", order.ID, order.ContactName, output.FormatMoney(order.Total))
		return nil
	},
}

var orderListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List orders, newest first",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		orders, err := s.Orders()
		if err != nil {
			output.Error("failed to list orders: %v", err)
			return err
		}

		if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
			status := models.OrderStatus(strings.ToLower(statusFlag))
			if !models.IsValidOrderStatus(status) {
				err := suggest.Hint("order status", statusFlag, models.ValidOrderStatuses())
				output.Error("%v", err)
				return err
			}
			kept := orders[:0:0]
			for _, o := range orders {
				if o.Status == status {
					kept = append(kept, o)
				}
			}
			orders = kept
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(orders)
		}

		if len(orders) == 0 {
			fmt.Println("No orders.")
			return nil
		}

		sorted := append([]models.Order(nil), orders...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
		for i := range sorted {
			fmt.Println(output.FormatOrderShort(&sorted[i]))
		}

		stats := views.OrderCounts(orders)
		fmt.Printf("\n%d active, %d delivered, %d cancelled\n",
			stats.Active(), stats.Delivered, stats.Cancelled)
		return nil
	},
}

var orderShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show an order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		order, err := s.GetOrder(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(order)
		}

		fmt.Printf("%s  %s  %s\n", output.Bold(order.ID), order.ContactName, output.FormatOrderStatus(order.Status))
		for _, it := range order.Items {
			fmt.Printf("  %3dx %-24s @ %8s = %s\n",
				it.Quantity, it.Name, output.FormatMoney(it.Price),
				output.FormatMoney(it.Price*float64(it.Quantity)))
		}
		fmt.Printf("Total: %s\n", output.Bold(output.FormatMoney(order.Total)))
		if order.Notes != "" {
			fmt.Printf("Notes: %s\n", order.Notes)
		}
		if order.ReminderDate != nil {
			sent := ""
			if order.ReminderSent {
				sent = " (sent)"
			}
			fmt.Printf("Reminder: %s%s\n", order.ReminderDate.Format("2006-01-02"), sent)
		}
		fmt.Printf("Created: %s\n", output.FormatTimeAgo(order.CreatedAt))
		return nil
	},
}

var orderSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change an order's status",
	Long: `Move an order to a new status: pending, confirmed, shipped, delivered,
or cancelled.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		status := models.OrderStatus(strings.ToLower(args[1]))
		if !models.IsValidOrderStatus(status) {
			err := suggest.Hint("order status", args[1], models.ValidOrderStatuses())
			output.Error("%v", err)
			return err
		}

		if err := s.UpdateOrder(args[0], store.OrderPatch{Status: &status}); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("SET %s %s\n", args[0], output.FormatOrderStatus(status))
		return nil
	},
}

var orderSetItemCmd = &cobra.Command{
	Use:   "set-item <id> <name:price:quantity>",
	Short: "Set or remove an order item",
	Long: `Set an item's price and quantity on an order, adding it if new.
Quantity zero removes the item. The total is recomputed.

Examples:
  cn order set-item or-1756712345678 "Widget:3.99:15"
  cn order set-item or-1756712345678 "Widget:0:0"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		item, err := parseOrderItem(args[1])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		if err := s.SetOrderItem(args[0], item.Name, item.Price, item.Quantity); err != nil {
			output.Error("%v", err)
			return err
		}

		if item.Quantity == 0 {
			fmt.Printf("REMOVED %q from %s\n", item.Name, args[0])
		} else {
			fmt.Printf("SET %dx %q on %s\n", item.Quantity, item.Name, args[0])
		}
		return nil
	},
}

var orderRemindCmd = &cobra.Command{
	Use:   "remind <id> <due>",
	Short: "Set a follow-up date on an order",
	Long: `Set the order's follow-up reminder date. Accepts the same forms as
'reminder add --due'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		due, err := timeparse.ParseDueDate(args[1])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		sent := false
		if err := s.UpdateOrder(args[0], store.OrderPatch{ReminderDate: &due, ReminderSent: &sent}); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("REMINDER on %s for %s\n", args[0], due.Format("2006-01-02"))
		return nil
	},
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(getDataDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer s.Close()

		if err := s.DeleteOrder(args[0]); err != nil {
			output.Error("%v", err)
			return err
		}

		fmt.Printf("DELETED %s\n", args[0])
		return nil
	},
}

// parseOrderItem parses "name:price:quantity". The name may itself contain
// colons; the last two segments are the numbers.
func parseOrderItem(spec string) (models.OrderItem, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return models.OrderItem{}, fmt.Errorf("invalid item %q (want name:price:quantity)", spec)
	}

	name := strings.TrimSpace(strings.Join(parts[:len(parts)-2], ":"))
	priceStr := strings.TrimSpace(parts[len(parts)-2])
	qtyStr := strings.TrimSpace(parts[len(parts)-1])

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price < 0 {
		return models.OrderItem{}, fmt.Errorf("invalid price %q in item %q", priceStr, spec)
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 {
		return models.OrderItem{}, fmt.Errorf("invalid quantity %q in item %q", qtyStr, spec)
	}

	return models.OrderItem{Name: name, Price: price, Quantity: qty}, nil
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.AddCommand(orderAddCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderSetStatusCmd)
	orderCmd.AddCommand(orderSetItemCmd)
	orderCmd.AddCommand(orderRemindCmd)
	orderCmd.AddCommand(orderDeleteCmd)

	orderAddCmd.Flags().StringArrayP("item", "i", nil, "Item as name:price:quantity (repeatable)")
	orderAddCmd.Flags().String("notes", "", "Free-form order notes")

	orderListCmd.Flags().StringP("status", "s", "", "Filter by status")
	orderListCmd.Flags().Bool("json", false, "JSON output")
	orderShowCmd.Flags().Bool("json", false, "JSON output")
}
