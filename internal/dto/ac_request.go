package dto

import "time"

type ACRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Watts    int64  `json:"watts"`
	UnitID   string `json:"id"`
}

type ACUpdateRequest struct {
	ID       string
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Watts    *int64  `json:"watts,omitempty"`
	UnitID   *string `json:"id,omitempty"`
}

type MaintenanceHistoryRequest struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Employee    string    `json:"employee"`
}
