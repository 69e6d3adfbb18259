// Package admin implements the operator dashboard for the delivery business.
//
// It renders analytics and the manager, driver, and order lists, and turns
// browser form posts into record-list mutations against a storage.Store.
package admin
