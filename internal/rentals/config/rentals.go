package config

import "time"

// RentalsConfig содержит параметры прокатов.
type RentalsConfig struct {
	// Period - срок, на который выставляется дата окончания нового проката.
	Period time.Duration `yaml:"period" env:"RENTALS_RENTAL_PERIOD" env-default:"72h"`
}

// SchedulerConfig содержит настройки фоновых задач.
type SchedulerConfig struct {
	Enabled     bool   `yaml:"enabled" env:"RENTALS_SCHEDULER_ENABLED" env-default:"true"`
	OverdueSpec string `yaml:"overdue_spec" env:"RENTALS_SCHEDULER_OVERDUE_SPEC" env-default:"@every 1h"`
}
