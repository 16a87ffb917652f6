package vitals

import "vitalsync-client/internal/app/models"

// Tier is the severity bucket a vital-sign channel falls into. Every
// numeric input maps to exactly one tier; there is no unknown.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierWarning  Tier = "warning"
	TierCritical Tier = "critical"
)

// Assessment holds one tier per channel plus the aggregate, which is the
// worst channel.
type Assessment struct {
	HeartRate        Tier
	OxygenSaturation Tier
	BloodPressure    Tier
	Temperature      Tier
	Overall          Tier
}

// ClassifyHeartRate flags rates below 60 or above 100 bpm. Heart rate
// has no warning band.
func ClassifyHeartRate(bpm float64) Tier {
	if bpm < 60 || bpm > 100 {
		return TierCritical
	}
	return TierNormal
}

func ClassifyOxygenSaturation(percent float64) Tier {
	if percent < 95 {
		return TierCritical
	}
	if percent < 98 {
		return TierWarning
	}
	return TierNormal
}

// ClassifyBloodPressure checks the critical bounds before the warning
// ones; when both would match, critical wins.
func ClassifyBloodPressure(systolic, diastolic float64) Tier {
	if systolic > 140 || diastolic > 90 || systolic < 90 || diastolic < 60 {
		return TierCritical
	}
	if systolic > 120 || diastolic > 80 {
		return TierWarning
	}
	return TierNormal
}

// ClassifyTemperature takes degrees Celsius; critical bounds are checked
// before the warning one.
func ClassifyTemperature(celsius float64) Tier {
	if celsius < 36 || celsius > 37.5 {
		return TierCritical
	}
	if celsius > 37.2 {
		return TierWarning
	}
	return TierNormal
}

// Classify derives the per-channel tiers and the aggregate for one
// reading. Pure function, no state.
func Classify(v models.VitalSigns) Assessment {
	assessment := Assessment{
		HeartRate:        ClassifyHeartRate(v.HeartRate),
		OxygenSaturation: ClassifyOxygenSaturation(v.OxygenSaturation),
		BloodPressure:    ClassifyBloodPressure(v.BloodPressure.Systolic, v.BloodPressure.Diastolic),
		Temperature:      ClassifyTemperature(v.Temperature),
	}
	assessment.Overall = worst(
		assessment.HeartRate,
		assessment.OxygenSaturation,
		assessment.BloodPressure,
		assessment.Temperature,
	)
	return assessment
}

func rank(t Tier) int {
	switch t {
	case TierCritical:
		return 2
	case TierWarning:
		return 1
	default:
		return 0
	}
}

func worst(tiers ...Tier) Tier {
	result := TierNormal
	for _, t := range tiers {
		if rank(t) > rank(result) {
			result = t
		}
	}
	return result
}
