package car

type AddCarReq struct {
	Model        string `json:"model" validate:"required"`
	LicensePlate string `json:"license_plate" validate:"required"`
}
