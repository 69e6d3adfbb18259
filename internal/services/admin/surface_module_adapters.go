package admin

import (
	"net/http"

	dashboardmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/dashboard"
	driversmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/drivers"
	managersmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/managers"
	ordersmodule "github.com/louisbranch/dispatchdesk/internal/services/admin/module/orders"
)

type dashboardModuleService struct {
	handler *Handler
}

func newDashboardModuleService(h *Handler) dashboardmodule.Service {
	if h == nil {
		return nil
	}
	return dashboardModuleService{handler: h}
}

func (s dashboardModuleService) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboard(w, r)
}

func (s dashboardModuleService) HandleDashboardContent(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDashboardContent(w, r)
}

type managersModuleService struct {
	handler *Handler
}

func newManagersModuleService(h *Handler) managersmodule.Service {
	if h == nil {
		return nil
	}
	return managersModuleService{handler: h}
}

func (s managersModuleService) HandleManagersPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleManagersPage(w, r)
}

func (s managersModuleService) HandleManagersTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleManagersTable(w, r)
}

func (s managersModuleService) HandleManagerCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleManagerCreate(w, r)
}

func (s managersModuleService) HandleManagerToggle(w http.ResponseWriter, r *http.Request, managerID string) {
	s.handler.handleManagerToggle(w, r, managerID)
}

func (s managersModuleService) HandleManagerDelete(w http.ResponseWriter, r *http.Request, managerID string) {
	s.handler.handleManagerDelete(w, r, managerID)
}

type driversModuleService struct {
	handler *Handler
}

func newDriversModuleService(h *Handler) driversmodule.Service {
	if h == nil {
		return nil
	}
	return driversModuleService{handler: h}
}

func (s driversModuleService) HandleDriversPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDriversPage(w, r)
}

func (s driversModuleService) HandleDriversTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDriversTable(w, r)
}

func (s driversModuleService) HandleDriverCreate(w http.ResponseWriter, r *http.Request) {
	s.handler.handleDriverCreate(w, r)
}

func (s driversModuleService) HandleDriverToggle(w http.ResponseWriter, r *http.Request, driverID string) {
	s.handler.handleDriverToggle(w, r, driverID)
}

func (s driversModuleService) HandleDriverDelete(w http.ResponseWriter, r *http.Request, driverID string) {
	s.handler.handleDriverDelete(w, r, driverID)
}

type ordersModuleService struct {
	handler *Handler
}

func newOrdersModuleService(h *Handler) ordersmodule.Service {
	if h == nil {
		return nil
	}
	return ordersModuleService{handler: h}
}

func (s ordersModuleService) HandleOrdersPage(w http.ResponseWriter, r *http.Request) {
	s.handler.handleOrdersPage(w, r)
}

func (s ordersModuleService) HandleOrdersTable(w http.ResponseWriter, r *http.Request) {
	s.handler.handleOrdersTable(w, r)
}
