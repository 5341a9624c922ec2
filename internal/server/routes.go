package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.loggingMw)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/user/register", s.userRegister()).Methods(http.MethodPost)
	api.HandleFunc("/user/login", s.userLogin()).Methods(http.MethodPost)
	api.HandleFunc("/user/oauth", s.userOAuthLogin()).Methods(http.MethodPost)

	userAPI := api.PathPrefix("/user").Subrouter()
	userAPI.Use(s.authMw)
	userAPI.HandleFunc("", s.userInfo()).Methods(http.MethodGet)
	userAPI.HandleFunc("/logout", s.userLogout()).Methods(http.MethodPost)
	userAPI.HandleFunc("/photo", s.userPhotoUpload()).Methods(http.MethodPost)
	userAPI.HandleFunc("/{userId}", s.userDelete()).Methods(http.MethodDelete)
	userAPI.PathPrefix("").Handler(http.NotFoundHandler())

	basketAPI := api.PathPrefix("/basket").Subrouter()
	basketAPI.Use(s.authMw)
	basketAPI.HandleFunc("/{userId}", s.basketList()).Methods(http.MethodGet)
	basketAPI.HandleFunc("/{userId}", s.basketAdd()).Methods(http.MethodPost)
	basketAPI.HandleFunc("/{userId}", s.basketClear()).Methods(http.MethodDelete)
	basketAPI.HandleFunc("/{userId}/total", s.basketTotal()).Methods(http.MethodGet)
	basketAPI.HandleFunc("/{userId}/{itemId}", s.basketRemoveItem()).Methods(http.MethodDelete)

	orderAPI := api.PathPrefix("/order").Subrouter()
	orderAPI.Use(s.authMw)
	orderAPI.HandleFunc("/{userId}", s.orderPlace()).Methods(http.MethodPost)
	orderAPI.HandleFunc("/{userId}", s.orderList()).Methods(http.MethodGet)
	orderAPI.HandleFunc("/{userId}", s.orderDeleteAll()).Methods(http.MethodDelete)
	orderAPI.HandleFunc("/{userId}/{orderId}", s.orderGet()).Methods(http.MethodGet)
	orderAPI.HandleFunc("/{userId}/{orderId}", s.orderRemove()).Methods(http.MethodDelete)
	orderAPI.HandleFunc("/{userId}/{orderId}/status", s.orderUpdateStatus()).Methods(http.MethodPut)

	configuratorAPI := api.PathPrefix("/configurator").Subrouter()
	configuratorAPI.Use(s.authMw)
	configuratorAPI.HandleFunc("/gpt", s.configuratorRecommend()).Methods(http.MethodPost)

	catalogRoutes(api, s, "cpu", s.CPUs)
	catalogRoutes(api, s, "gpu", s.GPUs)
	catalogRoutes(api, s, "ram", s.RAMs)
	catalogRoutes(api, s, "ssd", s.SSDs)
	catalogRoutes(api, s, "hdd", s.HDDs)
	catalogRoutes(api, s, "motherboard", s.Motherboards)
	catalogRoutes(api, s, "psu", s.PowerSupplies)
	catalogRoutes(api, s, "pc-case", s.PcCases)
	catalogRoutes(api, s, "pc", s.PCs)
	catalogRoutes(api, s, "workstation", s.Workstations)

	return r
}
