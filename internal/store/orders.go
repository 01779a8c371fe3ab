package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/cn/internal/models"
)

// OrderPatch holds the fields an update may change. Nil fields are left as-is.
// Items are patched through SetOrderItem rather than wholesale.
type OrderPatch struct {
	Status       *models.OrderStatus
	Notes        *string
	ReminderDate *time.Time
	ReminderSent *bool
}

// Orders returns the full order collection
func (s *Store) Orders() ([]models.Order, error) {
	return loadCollection[models.Order](s, KeyOrders)
}

// GetOrder returns the order with the given id, or an error if absent
func (s *Store) GetOrder(id string) (*models.Order, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order not found: %s", id)
}

// dropZeroQuantity removes items whose quantity fell to zero or below
func dropZeroQuantity(items []models.OrderItem) []models.OrderItem {
	kept := items[:0:0]
	for _, it := range items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	return kept
}

// AddOrder creates an order for a contact. The total is computed from the
// items; zero-quantity items are dropped rather than stored.
func (s *Store) AddOrder(contactID, contactName string, items []models.OrderItem, notes string) (*models.Order, error) {
	if contactID == "" {
		return nil, fmt.Errorf("order contact is required")
	}
	items = dropZeroQuantity(items)
	if len(items) == 0 {
		return nil, fmt.Errorf("order needs at least one item")
	}
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("order item name is required")
		}
	}

	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:          newID(orderIDPrefix),
		ContactID:   contactID,
		ContactName: contactName,
		Items:       items,
		Total:       models.ComputeTotal(items),
		Status:      models.OrderPending,
		Notes:       notes,
		CreatedAt:   time.Now(),
	}

	orders = append(orders, order)
	if err := saveCollection(s, KeyOrders, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder applies a patch to the matching order and refreshes UpdatedAt.
// A missing id is a silent no-op.
func (s *Store) UpdateOrder(id string, patch OrderPatch) error {
	orders, err := s.Orders()
	if err != nil {
		return err
	}

	updated := make([]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			if patch.Status != nil {
				if !models.IsValidOrderStatus(*patch.Status) {
					return fmt.Errorf("invalid order status: %s", *patch.Status)
				}
				o.Status = *patch.Status
			}
			if patch.Notes != nil {
				o.Notes = *patch.Notes
			}
			if patch.ReminderDate != nil {
				o.ReminderDate = patch.ReminderDate
			}
			if patch.ReminderSent != nil {
				o.ReminderSent = *patch.ReminderSent
			}
			o.Total = models.ComputeTotal(o.Items)
			o.UpdatedAt = time.Now()
		}
		updated[i] = o
	}

	return saveCollection(s, KeyOrders, updated)
}

// SetOrderItem sets the price and quantity of the named item on an order,
// adding the item if it is new. Quantity zero removes the item. The total is
// recomputed. A missing order id is a silent no-op.
func (s *Store) SetOrderItem(id, name string, price float64, quantity int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("order item name is required")
	}

	orders, err := s.Orders()
	if err != nil {
		return err
	}

	updated := make([]models.Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			found := false
			for j := range o.Items {
				if strings.EqualFold(o.Items[j].Name, name) {
					o.Items[j].Price = price
					o.Items[j].Quantity = quantity
					found = true
					break
				}
			}
			if !found && quantity > 0 {
				o.Items = append(o.Items, models.OrderItem{Name: name, Price: price, Quantity: quantity})
			}
			o.Items = dropZeroQuantity(o.Items)
			o.Total = models.ComputeTotal(o.Items)
			o.UpdatedAt = time.Now()
		}
		updated[i] = o
	}

	return saveCollection(s, KeyOrders, updated)
}

// DeleteOrder removes the matching order. A missing id is a silent no-op.
func (s *Store) DeleteOrder(id string) error {
	orders, err := s.Orders()
	if err != nil {
		return err
	}

	kept := orders[:0:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}

	return saveCollection(s, KeyOrders, kept)
}
