package domain

// FaultCause enumerates fault attributions for maintenance tickets.
//
// The contractor-liable flag on the metadata is only a default signal:
// actual liability is computed against the guarantee state, never read
// off this flag directly.
type FaultCause string

const (
	FaultCauseWorkmanship     FaultCause = "workmanship"
	FaultCauseMaterialFailure FaultCause = "material_failure"
	FaultCauseClientDamage    FaultCause = "client_damage"
	FaultCauseThirdParty      FaultCause = "third_party"
	FaultCauseEnvironmental   FaultCause = "environmental"
	FaultCauseVandalism       FaultCause = "vandalism"
	FaultCauseUnknown         FaultCause = "unknown"
)

// FaultCauseMetadata carries display and attribution info per cause.
type FaultCauseMetadata struct {
	Label            string
	Description      string
	Examples         []string
	ContractorLiable bool
}

var faultCauseMetadata = map[FaultCause]FaultCauseMetadata{
	FaultCauseWorkmanship: {
		Label:            "Workmanship",
		Description:      "Installation or repair quality issue attributable to the contractor",
		Examples:         []string{"Poor splice quality", "Incorrect cable routing", "Loose connector"},
		ContractorLiable: true,
	},
	FaultCauseMaterialFailure: {
		Label:            "Material Failure",
		Description:      "Defective material or equipment failing within its warranty",
		Examples:         []string{"Faulty ONT out of the box", "Degraded fiber spool", "Failed splitter"},
		ContractorLiable: false,
	},
	FaultCauseClientDamage: {
		Label:            "Client Damage",
		Description:      "Damage caused by the client or occupant",
		Examples:         []string{"Cut drop cable during gardening", "ONT water damage", "Moved equipment"},
		ContractorLiable: false,
	},
	FaultCauseThirdParty: {
		Label:            "Third Party",
		Description:      "Damage caused by an identifiable third party",
		Examples:         []string{"Civil works cut the duct", "Vehicle damaged a pole", "Other utility dig-up"},
		ContractorLiable: false,
	},
	FaultCauseEnvironmental: {
		Label:            "Environmental",
		Description:      "Weather or environmental damage outside anyone's control",
		Examples:         []string{"Storm damage", "Flooding", "Lightning strike"},
		ContractorLiable: false,
	},
	FaultCauseVandalism: {
		Label:            "Vandalism",
		Description:      "Deliberate damage or theft by unknown parties",
		Examples:         []string{"Cable theft", "Damaged street cabinet", "Tampered enclosure"},
		ContractorLiable: false,
	},
	FaultCauseUnknown: {
		Label:            "Unknown",
		Description:      "Cause not yet established; requires investigation",
		Examples:         []string{"Intermittent loss of signal with no visible damage"},
		ContractorLiable: false,
	},
}

// AllFaultCauses lists every fault cause in a stable order.
func AllFaultCauses() []FaultCause {
	return []FaultCause{
		FaultCauseWorkmanship,
		FaultCauseMaterialFailure,
		FaultCauseClientDamage,
		FaultCauseThirdParty,
		FaultCauseEnvironmental,
		FaultCauseVandalism,
		FaultCauseUnknown,
	}
}

// Metadata returns the static metadata for the cause.
func (c FaultCause) Metadata() FaultCauseMetadata {
	return faultCauseMetadata[c]
}

// Valid reports whether the value is one of the known causes.
func (c FaultCause) Valid() bool {
	_, ok := faultCauseMetadata[c]
	return ok
}
