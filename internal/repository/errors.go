// Package repository contains data access logic separated from HTTP
// handlers.  Sentinel errors defined here let handlers map failure
// scenarios to HTTP status codes without inspecting driver errors.
package repository

import "errors"

// ErrCarNotFound is returned when a car lookup matches no row.
// Handlers translate this into an HTTP 404 response.
var ErrCarNotFound = errors.New("car not found")

// ErrUnknownCar is returned by InquiryRepo.Create when orphan inquiries
// are disallowed and the submitted car_id references no catalog row.
// Handlers translate this into an HTTP 400 response.
var ErrUnknownCar = errors.New("unknown car_id")
