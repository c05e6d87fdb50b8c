package main

import (
	"github.com/MaaXYZ/MaaRoiBox/agent/go-service/roibox"
	"github.com/rs/zerolog/log"
)

// registrars installs every package's custom recognitions and actions into
// the agent server. Order does not matter; names must be unique.
var registrars = []struct {
	name     string
	register func()
}{
	{"roibox", roibox.Register},
}

func registerAll() {
	for _, r := range registrars {
		r.register()
		log.Info().Str("package", r.name).Msg("Registered custom components")
	}
}
