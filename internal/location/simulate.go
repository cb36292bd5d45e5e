package location

import (
	"math/rand"

	"paralela/internal/config"
)

// Weather is a current/parallel pair. The parallel side is always fabricated;
// it exists for narrative contrast and never comes from a live signal.
type Weather struct {
	Current     string
	Parallel    string
	Temperature int // Celsius
}

var simulatedStreets = []string{
	"Main Street", "Oak Avenue", "Pine Road", "Maple Drive", "Cedar Lane",
	"First Street", "Second Avenue", "Park Boulevard", "River Road", "Hill Street",
	"Church Street", "Market Square", "Broadway", "Union Street", "King Street",
}

var simulatedWeather = []Weather{
	{Current: "soleado", Parallel: "lluvia de cristales"},
	{Current: "nublado", Parallel: "nieve dorada"},
	{Current: "lluvioso", Parallel: "viento de colores"},
	{Current: "ventoso", Parallel: "brisa musical"},
	{Current: "fresco", Parallel: "calor luminoso"},
	{Current: "cálido", Parallel: "frío etéreo"},
}

const (
	simulatedCity    = "Brisbane"
	simulatedCountry = "Australia"
)

// sampleStreet picks one simulated street name.
func sampleStreet(rng *rand.Rand) string {
	return simulatedStreets[rng.Intn(len(simulatedStreets))]
}

// sampleWeather draws a fresh weather pair with a temperature in
// [TempMin, TempMax]. A new sample is drawn every time environment data is
// recomputed.
func sampleWeather(rng *rand.Rand) Weather {
	w := simulatedWeather[rng.Intn(len(simulatedWeather))]
	w.Temperature = config.TempMin + rng.Intn(config.TempMax-config.TempMin+1)
	return w
}
