package handlers

import "github.com/m04kA/SMC-AssistantBooking/internal/domain"

// ResourcesPath префикс маршрутов ресурса данного типа
func ResourcesPath(kind domain.ResourceKind) string {
	if kind == domain.KindActivity {
		return "/activities"
	}
	return "/timeslots"
}

// ReservationsPath префикс маршрутов бронирований данного типа
func ReservationsPath(kind domain.ResourceKind) string {
	if kind == domain.KindActivity {
		return "/activity-bookings"
	}
	return "/bookings"
}
