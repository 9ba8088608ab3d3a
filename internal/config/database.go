package config

import (
	"fmt"
	"net/url"
)

// Enabled сообщает, настроено ли подключение к базе данных.
// Если хост не задан, приложение использует файловое или in-memory хранилище.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

// DSN собирает строку подключения к PostgreSQL из отдельных параметров
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}
