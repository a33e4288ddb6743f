package models

import "time"

// RequestStatus enumerates the lifecycle of a junk removal request.
const (
	RequestStatusPending    = "pending"
	RequestStatusAccepted   = "accepted"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// JunkRemovalRequest is a customer's pickup request as the backend stores it.
type JunkRemovalRequest struct {
	ID                  string     `json:"id"`
	CustomerID          string     `json:"customerId"`
	CustomerName        string     `json:"customerName"`
	CustomerPhone       string     `json:"customerPhone,omitempty"`
	CustomerEmail       string     `json:"customerEmail,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	PickupAddress       string     `json:"pickupAddress"`
	ScheduledTime       time.Time  `json:"scheduledTime"`
	EstimatedDuration   int        `json:"estimatedDuration,omitempty"`
	EstimatedWeight     float64    `json:"estimatedWeight"`
	EstimatedValue      float64    `json:"estimatedValue,omitempty"`
	Photos              []string   `json:"photos,omitempty"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority,omitempty"`
	Type                string     `json:"type"`
	DriverID            string     `json:"driverId,omitempty"`
	DriverName          string     `json:"driverName,omitempty"`
	DriverPhone         string     `json:"driverPhone,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	TotalCost           float64    `json:"totalCost"`
	PaymentStatus       string     `json:"paymentStatus,omitempty"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
}

// CreateRequestData is the body for creating a new request.
type CreateRequestData struct {
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	PickupAddress       string    `json:"pickupAddress"`
	ScheduledTime       time.Time `json:"scheduledTime"`
	EstimatedWeight     float64   `json:"estimatedWeight"`
	Type                string    `json:"type"`
	Photos              []string  `json:"photos,omitempty"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	Priority            string    `json:"priority,omitempty"`
}

// EstimateLine is one line of a price estimate breakdown.
type EstimateLine struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// RequestEstimate is the backend's price estimate for a prospective request.
type RequestEstimate struct {
	BaseCost           float64        `json:"baseCost"`
	WeightCost         float64        `json:"weightCost"`
	DistanceCost       float64        `json:"distanceCost"`
	TypeMultiplier     float64        `json:"typeMultiplier"`
	PriorityMultiplier float64        `json:"priorityMultiplier"`
	TotalCost          float64        `json:"totalCost"`
	Confidence         float64        `json:"confidence"`
	Breakdown          []EstimateLine `json:"breakdown"`
}
