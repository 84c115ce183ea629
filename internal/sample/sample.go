// Package sample holds the hard-coded demonstration dataset the client
// substitutes when the backend's delivery analytics are unreachable. Views fed
// from here carry a Sample Data Mode marker; it is a demo fallback, not a
// cache.
package sample

import "github.com/codguard/codguard/internal/model"

// Deliveries returns the demonstration delivery list.
func Deliveries() []model.Delivery {
	return []model.Delivery{
		{
			ID:       "1",
			Customer: "Huzaifa Paracha",
			Phone:    "3361919915",
			Address:  "House no 1-5 parachnar street kohat -25000-",
			Tracking: "293350800016940",
			Merchant: "Elyscents Pakistan",
			Status:   "unbooked",
			Items:    2,
			Courier:  model.CourierPostex,
			City:     "Kohat",
			Value:    2500,
			Date:     "2025-05-20T10:30:00",
		},
		{
			ID:       "2",
			Customer: "Sara Ahmed",
			Phone:    "3112345678",
			Address:  "DHA Phase 5, Lahore",
			Tracking: "LEO243350800016948",
			Merchant: "Elyscents Pakistan",
			Status:   "dispatched",
			Items:    1,
			Courier:  model.CourierLeopard,
			City:     "Lahore",
			Value:    2800,
			Date:     "2025-05-21T09:30:00",
		},
		{
			ID:       "3",
			Customer: "Ali Hassan",
			Phone:    "3001234567",
			Address:  "Block 15, Gulshan-e-Iqbal, Karachi",
			Tracking: "LEO293350800016947",
			Merchant: "Elyscents Pakistan",
			Status:   "delivered",
			Items:    3,
			Courier:  model.CourierLeopard,
			City:     "Karachi",
			Value:    4500,
			Date:     "2025-05-20T10:00:00",
		},
	}
}

// CourierStats returns demonstration per-courier performance.
func CourierStats() map[string]model.CourierStats {
	return map[string]model.CourierStats{
		"postex":  {Courier: "postex", SuccessRate: 75, TotalOrders: 8, AvgValue: 2100},
		"leopard": {Courier: "leopard", SuccessRate: 85, TotalOrders: 6, AvgValue: 3200},
	}
}

// CityStats returns demonstration per-city courier comparisons.
func CityStats() []model.CityStats {
	return []model.CityStats{
		{City: "Karachi", PostexRate: 70, LeopardRate: 90},
		{City: "Lahore", PostexRate: 80, LeopardRate: 85},
		{City: "Islamabad", PostexRate: 85, LeopardRate: 80},
		{City: "Rawalpindi", PostexRate: 75, LeopardRate: 75},
	}
}

// Summary returns the demonstration delivery rollup.
func Summary() model.DeliverySummary {
	return model.DeliverySummary{
		TotalOrders:        14,
		PostexOrders:       8,
		LeopardOrders:      6,
		CourierPerformance: CourierStats(),
	}
}
