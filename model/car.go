// model/car.go
package model

type CarStatus string

const (
	CarAvailable    CarStatus = "Available"
	CarRented       CarStatus = "Rented"
	CarNotAvailable CarStatus = "Not Available"
)

type Car struct {
	ID           int64     `json:"id"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	Status       CarStatus `json:"status"`
}
