package view

import "github.com/codguard/codguard/internal/model"

// OrderFields are the filterable fields of the order confirmation grid.
func OrderFields() Fields[model.Order] {
	return Fields[model.Order]{
		"customer": func(o model.Order) string { return o.Customer },
		"phone":    func(o model.Order) string { return o.Phone },
		"tracking": func(o model.Order) string { return o.Tracking },
		"address":  func(o model.Order) string { return o.Address },
		"status":   func(o model.Order) string { return string(o.Status) },
	}
}

// DeliveryFields are the filterable fields of the delivery analytics grid.
func DeliveryFields() Fields[model.Delivery] {
	return Fields[model.Delivery]{
		"customer": func(d model.Delivery) string { return d.Customer },
		"phone":    func(d model.Delivery) string { return d.Phone },
		"tracking": func(d model.Delivery) string { return d.Tracking },
		"city":     func(d model.Delivery) string { return d.City },
		"courier":  func(d model.Delivery) string { return string(d.Courier) },
		"status":   func(d model.Delivery) string { return d.Status },
	}
}

// FakeOrderFields are the filterable fields of the fake order review grid.
func FakeOrderFields() Fields[model.FakeOrder] {
	return Fields[model.FakeOrder]{
		"customer": func(o model.FakeOrder) string { return o.Customer },
		"phone":    func(o model.FakeOrder) string { return o.Phone },
		"order":    func(o model.FakeOrder) string { return o.OrderID },
		"status":   func(o model.FakeOrder) string { return string(o.Status) },
	}
}

// RiskOrderFields are the filterable fields of the high-risk area grid.
func RiskOrderFields() Fields[model.HighRiskAreaOrder] {
	return Fields[model.HighRiskAreaOrder]{
		"customer": func(o model.HighRiskAreaOrder) string { return o.Customer },
		"area":     func(o model.HighRiskAreaOrder) string { return o.Area },
		"order":    func(o model.HighRiskAreaOrder) string { return o.OrderID },
		"status":   func(o model.HighRiskAreaOrder) string { return string(o.Status) },
	}
}

// CustomerFields are the filterable fields of the unresponsive customer grid.
func CustomerFields() Fields[model.UnresponsiveCustomer] {
	return Fields[model.UnresponsiveCustomer]{
		"name":   func(c model.UnresponsiveCustomer) string { return c.Name },
		"phone":  func(c model.UnresponsiveCustomer) string { return c.Phone },
		"order":  func(c model.UnresponsiveCustomer) string { return c.OrderNumber },
		"status": func(c model.UnresponsiveCustomer) string { return string(c.Status) },
		"stage":  func(c model.UnresponsiveCustomer) string { return string(c.Stage) },
	}
}
