package server

import (
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/SviatSloboda/MightyPC-sub001/internal/client"
	"github.com/SviatSloboda/MightyPC-sub001/internal/model"
	"github.com/SviatSloboda/MightyPC-sub001/internal/service"
)

type Server struct {
	Client        client.Client
	Logger        logger
	AuthSecretKey jwk.Key
	OAuthIssuer   string
	OAuthKeys     jwk.Set

	Users        service.Users
	Basket       service.Basket
	Orders       service.Orders
	Configurator service.Configurator

	CPUs          service.Catalog[model.CPU, *model.CPU]
	GPUs          service.Catalog[model.GPU, *model.GPU]
	RAMs          service.Catalog[model.RAM, *model.RAM]
	SSDs          service.Catalog[model.SSD, *model.SSD]
	HDDs          service.Catalog[model.HDD, *model.HDD]
	Motherboards  service.Catalog[model.Motherboard, *model.Motherboard]
	PowerSupplies service.Catalog[model.PowerSupply, *model.PowerSupply]
	PcCases       service.Catalog[model.PcCase, *model.PcCase]
	PCs           service.Catalog[model.PC, *model.PC]
	Workstations  service.Catalog[model.Workstation, *model.Workstation]
}

type logger interface {
	Debug(v ...any)
	Info(v ...any)
	Error(v ...any)
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}
