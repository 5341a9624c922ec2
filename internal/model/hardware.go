package model

// HardwareSpec holds the descriptive attributes shared by every catalog
// component.
type HardwareSpec struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Price       Price   `bson:"price" json:"price"`
	Rating      float64 `bson:"rating" json:"rating"`
}

type CPU struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Socket            string   `bson:"socket" json:"socket"`
	Performance       int      `bson:"performance" json:"performance"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type GPU struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Performance       int      `bson:"performance" json:"performance"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type RAM struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Type              string   `bson:"type" json:"type"`
	MemorySize        int      `bson:"memorySize" json:"memorySize"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type SSD struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Capacity          int      `bson:"capacity" json:"capacity"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type HDD struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Capacity          int      `bson:"capacity" json:"capacity"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type Motherboard struct {
	ID                string   `bson:"_id" json:"id"`
	HardwareSpec      `bson:"hardwareSpec" json:"hardwareSpec"`
	Socket            string   `bson:"socket" json:"socket"`
	EnergyConsumption int      `bson:"energyConsumption" json:"energyConsumption"`
	PhotoURLs         []string `bson:"photoUrls" json:"photoUrls"`
}

type PowerSupply struct {
	ID           string   `bson:"_id" json:"id"`
	HardwareSpec `bson:"hardwareSpec" json:"hardwareSpec"`
	Power        int      `bson:"power" json:"power"`
	PhotoURLs    []string `bson:"photoUrls" json:"photoUrls"`
}

type PcCase struct {
	ID           string   `bson:"_id" json:"id"`
	HardwareSpec `bson:"hardwareSpec" json:"hardwareSpec"`
	Dimensions   string   `bson:"dimensions" json:"dimensions"`
	PhotoURLs    []string `bson:"photoUrls" json:"photoUrls"`
}
