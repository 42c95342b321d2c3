// Package handler binds the HTTP API to the compilation service and the
// library stores.
package handler

import (
	"supercut/internal/service"
	"supercut/internal/storage"
	"supercut/internal/taskrunner"
)

type Handler struct {
	Service   *service.Service
	Runner    taskrunner.Submitter
	Catalog   *storage.Catalog
	Neighbors *storage.NeighborIndex
}

func NewHandler(svc *service.Service, runner taskrunner.Submitter, catalog *storage.Catalog, neighbors *storage.NeighborIndex) *Handler {
	return &Handler{
		Service:   svc,
		Runner:    runner,
		Catalog:   catalog,
		Neighbors: neighbors,
	}
}
