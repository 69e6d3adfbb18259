package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	DashboardContent = "/dashboard/content"
)

const (
	Managers       = "/managers"
	ManagersTable  = "/managers/table"
	ManagersCreate = "/managers/create"
	ManagersPrefix = "/managers/"
)

const (
	Drivers       = "/drivers"
	DriversTable  = "/drivers/table"
	DriversCreate = "/drivers/create"
	DriversPrefix = "/drivers/"
)

const (
	Orders      = "/orders"
	OrdersTable = "/orders/table"
)

// Record action segments appended to a manager or driver path.
const (
	ActionToggle = "toggle"
	ActionDelete = "delete"
)

func Manager(managerID string) string {
	return Managers + "/" + escapeSegment(managerID)
}

func ManagerToggle(managerID string) string {
	return Manager(managerID) + "/" + ActionToggle
}

func ManagerDelete(managerID string) string {
	return Manager(managerID) + "/" + ActionDelete
}

func Driver(driverID string) string {
	return Drivers + "/" + escapeSegment(driverID)
}

func DriverToggle(driverID string) string {
	return Driver(driverID) + "/" + ActionToggle
}

func DriverDelete(driverID string) string {
	return Driver(driverID) + "/" + ActionDelete
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
