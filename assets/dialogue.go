package assets

// Pool names one of the static dialogue collections.
type Pool uint8

const (
	PoolDelivery Pool = iota
	PoolVisit
	PoolAmbientPositive
	PoolAmbientNegative
)

func (p Pool) String() string {
	switch p {
	case PoolDelivery:
		return "delivery"
	case PoolVisit:
		return "visit"
	case PoolAmbientPositive:
		return "ambient-positive"
	case PoolAmbientNegative:
		return "ambient-negative"
	}
	return "unknown"
}

// Lines returns the pool's lines. The slice is shared; do not modify it.
func (p Pool) Lines() []string {
	switch p {
	case PoolDelivery:
		return DeliveryLines
	case PoolVisit:
		return DroneVisitLines
	case PoolAmbientPositive:
		return AmbientPositiveLines
	case PoolAmbientNegative:
		return AmbientNegativeLines
	}
	return nil
}

// DeliveryConfirmed replaces the dialogue once the delivery drone has landed.
const DeliveryConfirmed = "Drone: Delivery confirmed."

// AmbientPositiveLines are what the district's hopeful residents say.
var AmbientPositiveLines = []string{
	"Resident: The drones bring fresh fruit every morning now — no more long walks to the market.",
	"Engineer: Solar panels on rooftops reduced blackout times by 80%.",
	"Merchant: Drones deliver faster than any driver — the future arrived overnight.",
	"Nurse: The health pod can diagnose patients in seconds; it saved two lives last week.",
	"Guard: Patrol drones make this area feel safe again.",
	"Operator: Communication signals are more stable since the new uplink was installed.",
}

// AmbientNegativeLines are the complaints.
var AmbientNegativeLines = []string{
	"Resident: The drones don’t see us — they just drop supplies and leave.",
	"Mechanic: We fix what we can, but no one provides parts anymore.",
	"Artist: Even murals are scanned and replaced with ads now.",
	"Reporter: Power keeps fluctuating — the grid’s stretched thin.",
	"Elder: The city hums louder each night; I miss the silence.",
	"Worker: My permit expired — drones won’t let me into my workshop.",
}

// DeliveryLines are spoken by residents waiting on a food drop.
var DeliveryLines = []string{
	"Resident: I ordered some food earlier... It just arrived faster than I could boil water!",
	"Worker: These drones deliver lunch in minutes — eating warm meals feels like a luxury again.",
	"Student: My snacks flew here before I even finished the order form!",
	"Chef: Fresh ingredients now come straight to my doorstep — no need to rush to the market.",
	"Resident: Getting food in this district used to take forever. Now it’s quick and easy.",
	"Shopkeeper: Drone deliveries are so efficient; I almost miss arguing with couriers.",
	"Neighbor: The drones even found my house in the maze of alleys. It’s like magic!",
}

// DroneVisitLines are status reports from a patrol drone stopping by.
var DroneVisitLines = []string{
	"Drone: Routine area scan complete.",
	"Drone: Local humidity 43%.",
	"Drone: Visual confirmation received.",
	"Drone: All systems stable.",
	"Drone: Continuing patrol to next sector.",
}
