// Package config loads the server configuration from conf/config.ini,
// falling back to compiled defaults when the file or individual keys are
// missing.
package config

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"weldsim/material"
)

const DefaultPath = "conf/config.ini"

type Config struct {
	Server   Server
	Defaults Defaults
	LogLevel string
}

type Server struct {
	Addr            string
	ReadBufferSize  int
	WriteBufferSize int
	HistorySize     int
}

// Defaults are the process parameters used when a request leaves a field
// unset, mirroring the dashboard slider defaults.
type Defaults struct {
	Current        float64
	Voltage        float64
	TravelSpeed    float64
	ArcEfficiency  float64
	PlateThickness float64
	Material       string
}

// Load reads the ini file at path. A missing file is not an error; the
// compiled defaults are returned.
func Load(path string) *Config {
	file, err := ini.Load(path)
	if err != nil {
		log.WithField("path", path).Info("config file not found, using defaults")
		file = ini.Empty()
	}
	return fromFile(file)
}

func fromFile(file *ini.File) *Config {
	server := file.Section("server")
	defaults := file.Section("defaults")
	logging := file.Section("log")
	return &Config{
		Server: Server{
			Addr:            server.Key("addr").MustString(":9000"),
			ReadBufferSize:  server.Key("read_buffer_size").MustInt(1024),
			WriteBufferSize: server.Key("write_buffer_size").MustInt(1024),
			HistorySize:     server.Key("history_size").MustInt(16),
		},
		Defaults: Defaults{
			Current:        defaults.Key("current").MustFloat64(200),
			Voltage:        defaults.Key("voltage").MustFloat64(25),
			TravelSpeed:    defaults.Key("travel_speed").MustFloat64(5),
			ArcEfficiency:  defaults.Key("arc_efficiency").MustFloat64(0.7),
			PlateThickness: defaults.Key("plate_thickness").MustFloat64(10),
			Material:       defaults.Key("material").MustString(material.Steel),
		},
		LogLevel: logging.Key("level").MustString("info"),
	}
}
