package entities

import "time"

type Load struct {
	ID                string
	TransporterID     string
	MaterialType      MaterialType
	Weight            float64
	Source            GeoPoint
	Destination       GeoPoint
	VehicleBodyType   VehicleBodyType
	VehicleType       VehicleType
	NumberOfWheels    int
	OfferedAmount     OfferedAmount
	WhenNeeded        UrgencyType
	ScheduledAt       *time.Time
	IsActive          bool
	CurrentBidID      *string
	ExpiresAt         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OfferedAmount полное вознаграждение за рейс: сумма, процент аванса
// и топливная субсидия в литрах.
type OfferedAmount struct {
	Total             float64
	AdvancePercentage float64
	DieselLiters      float64
}

type LoadModify struct {
	ID                *string
	TransporterID     *string
	MaterialType      *MaterialType
	Weight            *float64
	Source            *GeoPoint
	Destination       *GeoPoint
	VehicleBodyType   *VehicleBodyType
	VehicleType       *VehicleType
	NumberOfWheels    *int
	OfferedAmount     *OfferedAmount
	WhenNeeded        *UrgencyType
	ScheduledAt       *time.Time
	IsActive          *bool
	ExpiresAt         *time.Time
}

type UrgencyType string

const (
	UrgencyImmediate UrgencyType = "IMMEDIATE"
	UrgencyScheduled UrgencyType = "SCHEDULED"
)

func (t UrgencyType) String() string {
	return string(t)
}

type VehicleBodyType string

const (
	OpenBody   VehicleBodyType = "OPEN_BODY"
	ClosedBody VehicleBodyType = "CLOSED_BODY"
)

func (t VehicleBodyType) String() string {
	return string(t)
}

type VehicleType string

const (
	VehicleTrailer VehicleType = "TRAILER"
	VehicleTruck   VehicleType = "TRUCK"
	VehicleHyva    VehicleType = "HYVA"
)

func (t VehicleType) String() string {
	return string(t)
}

type MaterialType string

const (
	MaterialIronSheet           MaterialType = "IRON SHEET"
	MaterialIndustrialEquipment MaterialType = "INDUSTRIAL EQUIPMENT"
	MaterialCement              MaterialType = "CEMENT"
	MaterialCoal                MaterialType = "COAL"
	MaterialSteel               MaterialType = "STEEL"
	MaterialIronBars            MaterialType = "IRON BARS"
	MaterialPipes               MaterialType = "PIPES"
	MaterialMetals              MaterialType = "METALS"
	MaterialScraps              MaterialType = "SCRAPS"
	MaterialOil                 MaterialType = "OIL"
	MaterialRubber              MaterialType = "RUBBER"
	MaterialWood                MaterialType = "WOOD"
	MaterialVehicleParts        MaterialType = "VEHICLE PARTS"
	MaterialLeather             MaterialType = "LEATHER"
	MaterialWheat               MaterialType = "WHEAT"
	MaterialVegetables          MaterialType = "VEGETABLES"
	MaterialCotton              MaterialType = "COTTON"
	MaterialTextiles            MaterialType = "TEXTILES"
	MaterialRice                MaterialType = "RICE"
	MaterialSpices              MaterialType = "SPICES"
	MaterialPackagedFood        MaterialType = "PACKAGED FOOD"
	MaterialMedicines           MaterialType = "MEDICINES"
	MaterialOthers              MaterialType = "OTHERS"
)

func (t MaterialType) String() string {
	return string(t)
}

// MaterialTypes закрытый список материалов, порядок как в анкете продукта.
var MaterialTypes = []MaterialType{
	MaterialIronSheet,
	MaterialIndustrialEquipment,
	MaterialCement,
	MaterialCoal,
	MaterialSteel,
	MaterialIronBars,
	MaterialPipes,
	MaterialMetals,
	MaterialScraps,
	MaterialOil,
	MaterialRubber,
	MaterialWood,
	MaterialVehicleParts,
	MaterialLeather,
	MaterialWheat,
	MaterialVegetables,
	MaterialCotton,
	MaterialTextiles,
	MaterialRice,
	MaterialSpices,
	MaterialPackagedFood,
	MaterialMedicines,
	MaterialOthers,
}
