package memory

import (
	"time"

	"github.com/louisbranch/dispatchdesk/internal/fleet"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SampleManagers returns the manager records a fresh process starts with.
func SampleManagers() []fleet.Manager {
	return []fleet.Manager{
		{ID: "mgr-1", Name: "Ana Souza", Email: "ana.souza@dispatchdesk.test", Phone: "+1 555-0101", Status: fleet.StatusActive, AddedAt: day(2025, time.January, 14), ManagedOrders: 128},
		{ID: "mgr-2", Name: "Bruno Lima", Email: "bruno.lima@dispatchdesk.test", Phone: "+1 555-0102", Status: fleet.StatusActive, AddedAt: day(2025, time.February, 3), ManagedOrders: 96},
		{ID: "mgr-3", Name: "Carla Mendes", Email: "carla.mendes@dispatchdesk.test", Phone: "+1 555-0103", Status: fleet.StatusLocked, AddedAt: day(2025, time.March, 21), ManagedOrders: 41},
		{ID: "mgr-4", Name: "David Chen", Email: "david.chen@dispatchdesk.test", Phone: "+1 555-0104", Status: fleet.StatusActive, AddedAt: day(2025, time.April, 9), ManagedOrders: 77},
		{ID: "mgr-5", Name: "Elena Rossi", Email: "elena.rossi@dispatchdesk.test", Phone: "+1 555-0105", Status: fleet.StatusActive, AddedAt: day(2025, time.May, 30), ManagedOrders: 63},
		{ID: "mgr-6", Name: "Farid Haddad", Email: "farid.haddad@dispatchdesk.test", Phone: "+1 555-0106", Status: fleet.StatusLocked, AddedAt: day(2025, time.July, 12), ManagedOrders: 12},
		{ID: "mgr-7", Name: "Grace Okafor", Email: "grace.okafor@dispatchdesk.test", Phone: "+1 555-0107", Status: fleet.StatusActive, AddedAt: day(2025, time.August, 2), ManagedOrders: 54},
		{ID: "mgr-8", Name: "Hiro Tanaka", Email: "hiro.tanaka@dispatchdesk.test", Phone: "+1 555-0108", Status: fleet.StatusActive, AddedAt: day(2025, time.September, 18), ManagedOrders: 30},
	}
}

// SampleDrivers returns the driver records a fresh process starts with.
func SampleDrivers() []fleet.Driver {
	return []fleet.Driver{
		{ID: "drv-1", Name: "Igor Petrov", Email: "igor.petrov@dispatchdesk.test", Phone: "+1 555-0201", Vehicle: "Motorbike", Status: fleet.StatusActive, AddedAt: day(2025, time.January, 20), CompletedDeliveries: 412},
		{ID: "drv-2", Name: "Julia Costa", Email: "julia.costa@dispatchdesk.test", Phone: "+1 555-0202", Vehicle: "Van", Status: fleet.StatusActive, AddedAt: day(2025, time.February, 11), CompletedDeliveries: 388},
		{ID: "drv-3", Name: "Kwame Mensah", Email: "kwame.mensah@dispatchdesk.test", Phone: "+1 555-0203", Vehicle: "Bicycle", Status: fleet.StatusActive, AddedAt: day(2025, time.February, 27), CompletedDeliveries: 251},
		{ID: "drv-4", Name: "Lucia Fernandez", Email: "lucia.fernandez@dispatchdesk.test", Phone: "+1 555-0204", Vehicle: "Car", Status: fleet.StatusLocked, AddedAt: day(2025, time.March, 15), CompletedDeliveries: 97},
		{ID: "drv-5", Name: "Marco Bianchi", Email: "marco.bianchi@dispatchdesk.test", Phone: "+1 555-0205", Vehicle: "Motorbike", Status: fleet.StatusActive, AddedAt: day(2025, time.April, 2), CompletedDeliveries: 305},
		{ID: "drv-6", Name: "Nadia Karim", Email: "nadia.karim@dispatchdesk.test", Phone: "+1 555-0206", Vehicle: "Van", Status: fleet.StatusActive, AddedAt: day(2025, time.May, 8), CompletedDeliveries: 186},
		{ID: "drv-7", Name: "Oscar Silva", Email: "oscar.silva@dispatchdesk.test", Phone: "+1 555-0207", Vehicle: "Car", Status: fleet.StatusActive, AddedAt: day(2025, time.June, 19), CompletedDeliveries: 143},
		{ID: "drv-8", Name: "Priya Nair", Email: "priya.nair@dispatchdesk.test", Phone: "+1 555-0208", Vehicle: "Bicycle", Status: fleet.StatusLocked, AddedAt: day(2025, time.July, 25), CompletedDeliveries: 58},
		{ID: "drv-9", Name: "Quentin Moreau", Email: "quentin.moreau@dispatchdesk.test", Phone: "+1 555-0209", Vehicle: "Motorbike", Status: fleet.StatusActive, AddedAt: day(2025, time.August, 14), CompletedDeliveries: 120},
		{ID: "drv-10", Name: "Rosa Alves", Email: "rosa.alves@dispatchdesk.test", Phone: "+1 555-0210", Vehicle: "Van", Status: fleet.StatusActive, AddedAt: day(2025, time.September, 6), CompletedDeliveries: 74},
	}
}

// SampleOrders returns the order records a fresh process starts with.
func SampleOrders() []fleet.Order {
	return []fleet.Order{
		{ID: "ord-1", Code: "ORD-1001", Client: "Blue Harbor Cafe", Items: 3, Total: 4250, Status: fleet.OrderDelivered, Manager: "Ana Souza", Driver: "Igor Petrov", Date: day(2025, time.October, 1)},
		{ID: "ord-2", Code: "ORD-1002", Client: "Green Leaf Market", Items: 12, Total: 18990, Status: fleet.OrderDelivered, Manager: "Bruno Lima", Driver: "Julia Costa", Date: day(2025, time.October, 1)},
		{ID: "ord-3", Code: "ORD-1003", Client: "Maple Street Bakery", Items: 5, Total: 6375, Status: fleet.OrderProcessing, Manager: "Ana Souza", Driver: "Kwame Mensah", Date: day(2025, time.October, 2)},
		{ID: "ord-4", Code: "ORD-1004", Client: "Northside Pharmacy", Items: 2, Total: 2899, Status: fleet.OrderPending, Manager: "David Chen", Driver: "", Date: day(2025, time.October, 2)},
		{ID: "ord-5", Code: "ORD-1005", Client: "Sunrise Florist", Items: 7, Total: 9120, Status: fleet.OrderDelivered, Manager: "Elena Rossi", Driver: "Marco Bianchi", Date: day(2025, time.October, 3)},
		{ID: "ord-6", Code: "ORD-1006", Client: "Harbor Hardware", Items: 1, Total: 15400, Status: fleet.OrderProcessing, Manager: "Grace Okafor", Driver: "Nadia Karim", Date: day(2025, time.October, 3)},
		{ID: "ord-7", Code: "ORD-1007", Client: "Blue Harbor Cafe", Items: 4, Total: 5210, Status: fleet.OrderPending, Manager: "Hiro Tanaka", Driver: "", Date: day(2025, time.October, 4)},
		{ID: "ord-8", Code: "ORD-1008", Client: "Riverside Books", Items: 9, Total: 11245, Status: fleet.OrderDelivered, Manager: "Bruno Lima", Driver: "Oscar Silva", Date: day(2025, time.October, 4)},
		{ID: "ord-9", Code: "ORD-1009", Client: "Green Leaf Market", Items: 15, Total: 23450, Status: fleet.OrderProcessing, Manager: "David Chen", Driver: "Igor Petrov", Date: day(2025, time.October, 5)},
		{ID: "ord-10", Code: "ORD-1010", Client: "Copper Kettle Diner", Items: 6, Total: 7800, Status: fleet.OrderDelivered, Manager: "Ana Souza", Driver: "Quentin Moreau", Date: day(2025, time.October, 5)},
		{ID: "ord-11", Code: "ORD-1011", Client: "Northside Pharmacy", Items: 3, Total: 3120, Status: fleet.OrderDelivered, Manager: "Elena Rossi", Driver: "Rosa Alves", Date: day(2025, time.October, 6)},
		{ID: "ord-12", Code: "ORD-1012", Client: "Sunrise Florist", Items: 2, Total: 2450, Status: fleet.OrderPending, Manager: "Grace Okafor", Driver: "", Date: day(2025, time.October, 6)},
		{ID: "ord-13", Code: "ORD-1013", Client: "Harbor Hardware", Items: 8, Total: 30275, Status: fleet.OrderProcessing, Manager: "Hiro Tanaka", Driver: "Julia Costa", Date: day(2025, time.October, 7)},
		{ID: "ord-14", Code: "ORD-1014", Client: "Maple Street Bakery", Items: 10, Total: 12600, Status: fleet.OrderDelivered, Manager: "Bruno Lima", Driver: "Marco Bianchi", Date: day(2025, time.October, 7)},
	}
}
