package dto

type AppointmentListDTO struct {
	ID           uint   `json:"id"`
	Reference    string `json:"reference"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name"`
	ServiceName  string `json:"service_name"`
}
