package config

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkAddress - адрес HTTP сервера в форме host:port.
// Реализует flag.Value и encoding.TextUnmarshaler, поэтому значение
// задается и CLI-флагом, и environment-переменной
type NetworkAddress struct {
	Host string
	Port int
}

func (a NetworkAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set разбирает строку host:port. Пустой хост допустим и означает
// прослушивание всех интерфейсов
func (a *NetworkAddress) Set(value string) error {
	host, port, found := strings.Cut(value, ":")
	if !found {
		return fmt.Errorf("invalid network address format: %s", value)
	}

	portNumber, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	a.Host = host
	a.Port = portNumber

	return nil
}

func (a *NetworkAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
