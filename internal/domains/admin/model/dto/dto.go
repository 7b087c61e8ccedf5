package dto

import (
	bookingDto "trek/internal/domains/booking/model/dto"
)

type DashboardResponse struct {
	TotalPackages         int     `json:"total_packages"`
	TotalBookings         int     `json:"total_bookings"`
	TotalCustomers        int     `json:"total_customers"`
	TotalGuides           int     `json:"total_guides"`
	PendingBookings       int     `json:"pending_bookings"`
	PendingCustomRequests int     `json:"pending_custom_requests"`
	TotalRevenue          float64 `json:"total_revenue"`
	AverageTourRating     float64 `json:"average_tour_rating"`

	RecentBookings []bookingDto.BookingResponse `json:"recent_bookings"`
}
