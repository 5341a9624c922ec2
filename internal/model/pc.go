package model

// ComponentIDs references one catalog entry per slot. Referenced IDs are not
// checked against the catalog.
type ComponentIDs struct {
	CpuID         string `bson:"cpuId" json:"cpuId"`
	GpuID         string `bson:"gpuId" json:"gpuId"`
	RamID         string `bson:"ramId" json:"ramId"`
	SsdID         string `bson:"ssdId" json:"ssdId"`
	HddID         string `bson:"hddId" json:"hddId"`
	MotherboardID string `bson:"motherboardId" json:"motherboardId"`
	PowerSupplyID string `bson:"powerSupplyId" json:"powerSupplyId"`
	PcCaseID      string `bson:"pcCaseId" json:"pcCaseId"`
}

type PC struct {
	ID               string       `bson:"_id" json:"id"`
	Name             string       `bson:"name" json:"name"`
	Components       ComponentIDs `bson:"components" json:"components"`
	TotalPrice       Price        `bson:"totalPrice" json:"totalPrice"`
	TotalPerformance int          `bson:"totalPerformance" json:"totalPerformance"`
	PhotoURLs        []string     `bson:"photoUrls" json:"photoUrls"`
}

type Workstation struct {
	ID               string       `bson:"_id" json:"id"`
	Name             string       `bson:"name" json:"name"`
	Components       ComponentIDs `bson:"components" json:"components"`
	CPUCount         int          `bson:"cpuCount" json:"cpuCount"`
	GPUCount         int          `bson:"gpuCount" json:"gpuCount"`
	TotalPrice       Price        `bson:"totalPrice" json:"totalPrice"`
	TotalPerformance int          `bson:"totalPerformance" json:"totalPerformance"`
	PhotoURLs        []string     `bson:"photoUrls" json:"photoUrls"`
}
