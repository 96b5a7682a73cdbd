package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/riquelima/SandyPetShop-v3/internal/calendar"
	"github.com/riquelima/SandyPetShop-v3/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"   validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"       validate:"required"`
	Calendar  CalendarConfig  `yaml:"calendar"`
	Capacity  CapacityConfig  `yaml:"capacity"   validate:"required"`
	SlotIndex SlotIndexConfig `yaml:"slot_index" validate:"required"`
	Workflow  WorkflowConfig  `yaml:"workflow"   validate:"required"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level name to a wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"petcare"   validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig is optional: an empty address keeps the slot index in memory
// and disables event publishing.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"       env-default:""`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"   env-default:""`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"                    validate:"min=0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"{petcare}:"`
	Channel   string `yaml:"channel"    env:"REDIS_CHANNEL"    env-default:"petcare:reservations"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" validate:"required,min=16"`
	AdminRole string `yaml:"admin_role" env:"AUTH_ADMIN_ROLE" env-default:"admin" validate:"required"`
}

// ServiceHours overrides the built-in schedule of one service. Empty fields
// keep the default.
type ServiceHours struct {
	Open       string        `yaml:"open"`
	Close      string        `yaml:"close"`
	LunchStart string        `yaml:"lunch_start"`
	LunchEnd   string        `yaml:"lunch_end"`
	SlotLength time.Duration `yaml:"slot_length"`
}

type CalendarConfig struct {
	ClosedDays []string     `yaml:"closed_days" env:"CALENDAR_CLOSED_DAYS" env-default:"sunday" env-separator:","`
	Grooming   ServiceHours `yaml:"grooming"`
	Daycare    ServiceHours `yaml:"daycare"`
	Hotel      ServiceHours `yaml:"hotel"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Build returns the shop calendar with the configured overrides applied.
func (c CalendarConfig) Build() (*calendar.Calendar, error) {
	base := calendar.Default()
	services := make(map[domain.ServiceType]calendar.ServiceCalendar, len(domain.ServiceTypes))
	overrides := map[domain.ServiceType]ServiceHours{
		domain.ServiceGrooming: c.Grooming,
		domain.ServiceDaycare:  c.Daycare,
		domain.ServiceHotel:    c.Hotel,
	}

	for _, st := range domain.ServiceTypes {
		sc, _ := base.Service(st)
		merged, err := overrides[st].apply(sc)
		if err != nil {
			return nil, fmt.Errorf("calendar %s: %w", st, err)
		}
		services[st] = merged
	}

	closed := make([]time.Weekday, 0, len(c.ClosedDays))
	for _, d := range c.ClosedDays {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		wd, ok := weekdays[d]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", d)
		}
		closed = append(closed, wd)
	}

	return calendar.New(services, closed), nil
}

func (h ServiceHours) apply(sc calendar.ServiceCalendar) (calendar.ServiceCalendar, error) {
	set := func(dst *time.Duration, s string) error {
		if s == "" {
			return nil
		}
		d, err := domain.ParseClock(s)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}

	if err := set(&sc.Window.Open, h.Open); err != nil {
		return sc, err
	}
	if err := set(&sc.Window.Close, h.Close); err != nil {
		return sc, err
	}
	if h.LunchStart != "" || h.LunchEnd != "" {
		var lunch domain.TimeRange
		if err := set(&lunch.Start, h.LunchStart); err != nil {
			return sc, err
		}
		if err := set(&lunch.End, h.LunchEnd); err != nil {
			return sc, err
		}
		if !lunch.Valid() {
			return sc, fmt.Errorf("lunch break %s is empty", lunch)
		}
		sc.Window.Excluded = []domain.TimeRange{lunch}
	}
	if h.SlotLength > 0 {
		sc.SlotLength = h.SlotLength
	}
	if sc.Window.Close <= sc.Window.Open {
		return sc, fmt.Errorf("close %s is not after open %s", domain.FormatClock(sc.Window.Close), domain.FormatClock(sc.Window.Open))
	}
	return sc, nil
}

type CapacityConfig struct {
	Grooming   int `yaml:"grooming"    env:"CAPACITY_GROOMING"    env-default:"2"  validate:"min=1"`
	Daycare    int `yaml:"daycare"     env:"CAPACITY_DAYCARE"     env-default:"2"  validate:"min=1"`
	HotelLanes int `yaml:"hotel_lanes" env:"CAPACITY_HOTEL_LANES" env-default:"10" validate:"min=1"`
	// Overrides are keyed "service@HH:MM", e.g. "grooming@09:00: 1".
	Overrides map[string]int `yaml:"overrides"`
}

func (c CapacityConfig) Build() (calendar.Capacity, error) {
	capacity := calendar.Capacity{
		Defaults: map[domain.ServiceType]int{
			domain.ServiceGrooming: c.Grooming,
			domain.ServiceDaycare:  c.Daycare,
		},
		Overrides: make(map[domain.ServiceType]map[time.Duration]int),
		Lanes:     c.HotelLanes,
	}

	for key, n := range c.Overrides {
		svc, clock, ok := strings.Cut(key, "@")
		if !ok {
			return capacity, fmt.Errorf("capacity override %q: expected service@HH:MM", key)
		}
		st, err := domain.ParseServiceType(svc)
		if err != nil {
			return capacity, err
		}
		start, err := domain.ParseClock(clock)
		if err != nil {
			return capacity, err
		}
		if capacity.Overrides[st] == nil {
			capacity.Overrides[st] = make(map[time.Duration]int)
		}
		capacity.Overrides[st][start] = n
	}
	return capacity, nil
}

type SlotIndexConfig struct {
	Driver string `yaml:"driver" env:"SLOT_INDEX_DRIVER" env-default:"memory" validate:"required,oneof=memory redis"`
}

type WorkflowConfig struct {
	DraftTTL time.Duration `yaml:"draft_ttl" env:"WORKFLOW_DRAFT_TTL" env-default:"2h" validate:"required,gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
