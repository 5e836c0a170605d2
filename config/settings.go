package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultPort is where both servers listen unless told otherwise. The hello
	// server always uses it.
	DefaultPort     = 3000
	DefaultPodName  = "unknown"
	DefaultSubtitle = "Kubernetes Workshop Example Application"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Hello is the configuration of the plain-text greeting server.
type Hello struct {
	// Name is from NAME, or the process identity when unset.
	Name string `mapstructure:"name" yaml:"name" validate:"required"`
	Port int    `mapstructure:"-" yaml:"port" validate:"required,gt=0,lte=65535"`
}

func (h Hello) Addr() string { return listenAddr(h.Port) }

// Page is the configuration of the html page server.
type Page struct {
	Name     string `mapstructure:"name" yaml:"name" validate:"required"`
	Port     int    `mapstructure:"port" yaml:"port" validate:"required,gt=0,lte=65535"`
	Subtitle string `mapstructure:"subtitle" yaml:"subtitle" validate:"required"`
}

func (p Page) Addr() string { return listenAddr(p.Port) }

// LoadHello reads NAME from the environment. The port is fixed.
func LoadHello() (Hello, error) {
	h, err := load[Hello](map[string]any{
		"name": ProcessName(),
	})
	if err != nil {
		return h, err
	}
	h.Port = DefaultPort
	return check(h)
}

// LoadPage reads NAME, PORT and SUBTITLE from the environment.
func LoadPage() (Page, error) {
	p, err := load[Page](map[string]any{
		"name":     DefaultPodName,
		"port":     DefaultPort,
		"subtitle": DefaultSubtitle,
	})
	if err != nil {
		return p, err
	}
	return check(p)
}

// ProcessName is the base name of the running executable, falling back on
// argv[0].
func ProcessName() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Base(exe)
	}
	return filepath.Base(os.Args[0])
}

// listen on all interfaces
func listenAddr(port int) string {
	return net.JoinHostPort("", strconv.Itoa(port))
}
