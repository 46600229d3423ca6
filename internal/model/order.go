package model

// OrderItem is a single line of an in-progress order.
type OrderItem struct {
	Name                string
	Size                string
	Price               float64
	Quantity            int
	SpecialInstructions string
}

// OrderContext is the accumulating order record embedded in a session.
// Customer fields are pointers so "never set" is distinguishable from
// "set to empty".
type OrderContext struct {
	CustomerName        *string
	PhoneNumber         *string
	DeliveryAddress     *string
	PaymentMethod       *string
	DeliveryPreference  *string
	SpecialInstructions *string

	Items []OrderItem
	Total float64
}

// Clone returns a deep copy safe to hand out while the original keeps
// mutating under its session lock.
func (o OrderContext) Clone() OrderContext {
	c := o
	c.CustomerName = cloneString(o.CustomerName)
	c.PhoneNumber = cloneString(o.PhoneNumber)
	c.DeliveryAddress = cloneString(o.DeliveryAddress)
	c.PaymentMethod = cloneString(o.PaymentMethod)
	c.DeliveryPreference = cloneString(o.DeliveryPreference)
	c.SpecialInstructions = cloneString(o.SpecialInstructions)
	if o.Items != nil {
		c.Items = make([]OrderItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
