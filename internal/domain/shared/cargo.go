package shared

import "fmt"

// CargoItem is one stack in the ship's hold
type CargoItem struct {
	Mineral  Mineral
	Quantity int
	Refined  bool
}

// NewCargoItem creates a new cargo stack with validation
func NewCargoItem(mineral Mineral, quantity int, refined bool) (*CargoItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("cargo quantity cannot be negative")
	}
	if !mineral.IsValid() {
		return nil, fmt.Errorf("invalid mineral: %s", mineral)
	}

	return &CargoItem{
		Mineral:  mineral,
		Quantity: quantity,
		Refined:  refined,
	}, nil
}

// Cargo is the ship's hold.
//
// Invariants:
// - at most one stack per (mineral, refined) pair
// - no zero-quantity stacks
// - Units() <= Capacity
type Cargo struct {
	Capacity int
	Items    []*CargoItem
}

// NewCargo creates an empty hold with the given capacity
func NewCargo(capacity int) (*Cargo, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("cargo capacity cannot be negative")
	}
	return &Cargo{Capacity: capacity}, nil
}

// Units sums all stack quantities
func (c *Cargo) Units() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Find returns the stack for (mineral, refined), or nil
func (c *Cargo) Find(mineral Mineral, refined bool) *CargoItem {
	for _, item := range c.Items {
		if item.Mineral == mineral && item.Refined == refined {
			return item
		}
	}
	return nil
}

// Quantity returns the units held in the (mineral, refined) stack (0 if absent)
func (c *Cargo) Quantity(mineral Mineral, refined bool) int {
	if item := c.Find(mineral, refined); item != nil {
		return item.Quantity
	}
	return 0
}

// HasItem checks if the hold contains at least minUnits of the stack
func (c *Cargo) HasItem(mineral Mineral, refined bool, minUnits int) bool {
	return c.Quantity(mineral, refined) >= minUnits
}

// AvailableCapacity calculates free space in the hold
func (c *Cargo) AvailableCapacity() int {
	return c.Capacity - c.Units()
}

// CanFit reports whether quantity more units fit without exceeding capacity
func (c *Cargo) CanFit(quantity int) bool {
	return c.Units()+quantity <= c.Capacity
}

// IsFull checks if the hold is at or above capacity
func (c *Cargo) IsFull() bool {
	return c.Units() >= c.Capacity
}

// Add merges quantity into the (mineral, refined) stack, creating it if absent.
// Capacity is the caller's concern; Add only keeps the one-stack-per-pair invariant.
func (c *Cargo) Add(mineral Mineral, refined bool, quantity int) {
	if quantity <= 0 {
		return
	}
	if item := c.Find(mineral, refined); item != nil {
		item.Quantity += quantity
		return
	}
	c.Items = append(c.Items, &CargoItem{Mineral: mineral, Quantity: quantity, Refined: refined})
}

// Remove takes quantity out of the (mineral, refined) stack, dropping the stack when it empties.
// Returns false without changing anything when the stack holds less than quantity.
func (c *Cargo) Remove(mineral Mineral, refined bool, quantity int) bool {
	for i, item := range c.Items {
		if item.Mineral != mineral || item.Refined != refined {
			continue
		}
		if item.Quantity < quantity {
			return false
		}
		item.Quantity -= quantity
		if item.Quantity <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return true
	}
	return false
}

// Clone returns a deep copy of the hold
func (c *Cargo) Clone() *Cargo {
	out := &Cargo{Capacity: c.Capacity, Items: make([]*CargoItem, 0, len(c.Items))}
	for _, item := range c.Items {
		copied := *item
		out.Items = append(out.Items, &copied)
	}
	return out
}

func (c *Cargo) String() string {
	return fmt.Sprintf("Cargo(%d/%d)", c.Units(), c.Capacity)
}
