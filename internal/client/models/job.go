package models

import "time"

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// JobUpdate is a realtime status change for a job the user is involved in.
type JobUpdate struct {
	JobID      string    `json:"jobId"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driverId,omitempty"`
	DriverName string    `json:"driverName,omitempty"`
	ETA        string    `json:"eta,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

// Job is a pickup job offered to drivers.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PickupAddress   string    `json:"pickupAddress"`
	ScheduledTime   time.Time `json:"scheduledTime"`
	EstimatedWeight float64   `json:"estimatedWeight"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customerName,omitempty"`
	TotalCost       float64   `json:"totalCost,omitempty"`
}

// Bid is a driver's offer on a job.
type Bid struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	DriverID   string    `json:"driverId"`
	DriverName string    `json:"driverName,omitempty"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DriverStatusUpdate is the payload of an updateDriverStatus emission.
type DriverStatusUpdate struct {
	DriverID string `json:"driverId"`
	Status   string `json:"status"`
}

// DriverLocation is a realtime driver position for an active job.
type DriverLocation struct {
	JobID    string   `json:"jobId"`
	Location Location `json:"location"`
}
