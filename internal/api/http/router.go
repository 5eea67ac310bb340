package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"tweederent-backend/internal/identity"
	"tweederent-backend/internal/storage"
)

// Handlers bundles the constructed handlers for route registration.
type Handlers struct {
	Auth   *AuthHandler
	Device *DeviceHandler
	Rental *RentalHandler
	Review *ReviewHandler
	User   *UserHandler
}

// NewRouter builds the full API route table. mockStorage is optional;
// when set, the image download endpoint is mounted.
func NewRouter(h Handlers, provider identity.Provider, mockStorage *storage.MockStorageService) *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public endpoints.
	api.HandleFunc("/auth/signup", h.Auth.SignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", h.Auth.SignIn).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset", h.Auth.SendPasswordReset).Methods(http.MethodPost)
	api.HandleFunc("/categories", h.Device.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/devices", h.Device.Search).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}", h.Device.Get).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}/availability", h.Rental.CheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/devices/{id}/reviews", h.Review.ListForDevice).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", h.User.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/reviews", h.Review.ListForUser).Methods(http.MethodGet)

	if mockStorage != nil {
		api.HandleFunc("/images", NewImageHandler(mockStorage).Download).Methods(http.MethodGet)
	}

	// Authenticated endpoints.
	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(provider))

	authed.HandleFunc("/auth/signout", h.Auth.SignOut).Methods(http.MethodPost)

	authed.HandleFunc("/me", h.User.GetMe).Methods(http.MethodGet)
	authed.HandleFunc("/me", h.User.UpdateMe).Methods(http.MethodPut)
	authed.HandleFunc("/me/devices", h.Device.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/me/rentals", h.Rental.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/me/rental-requests", h.Rental.ListReceivedRequests).Methods(http.MethodGet)
	authed.HandleFunc("/me/active-rentals", h.Rental.ListActive).Methods(http.MethodGet)

	authed.HandleFunc("/devices", h.Device.Create).Methods(http.MethodPost)
	authed.HandleFunc("/devices/{id}", h.Device.Update).Methods(http.MethodPut)
	authed.HandleFunc("/devices/{id}", h.Device.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/devices/{id}/images", h.Device.UploadImage).Methods(http.MethodPost)

	authed.HandleFunc("/bookings", h.Rental.CreateBooking).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}", h.Rental.Get).Methods(http.MethodGet)
	authed.HandleFunc("/rentals/{id}/approve", h.Rental.Approve).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/deny", h.Rental.Deny).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/start", h.Rental.Start).Methods(http.MethodPost)
	authed.HandleFunc("/rentals/{id}/complete", h.Rental.Complete).Methods(http.MethodPost)

	authed.HandleFunc("/reviews", h.Review.Submit).Methods(http.MethodPost)

	return router
}
