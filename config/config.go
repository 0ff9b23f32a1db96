package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"fixedhash/lib/logger"
)

type ServerProperties struct {
	Bind        string  `cfg:"bind" env:"FIXEDHASH_BIND"`
	Port        int     `cfg:"port" env:"FIXEDHASH_PORT"`
	MaxClients  int     `cfg:"maxclients" env:"FIXEDHASH_MAXCLIENTS"`
	LogLevel    string  `cfg:"loglevel" env:"FIXEDHASH_LOGLEVEL"`
	LoadFactor  float64 `cfg:"loadfactor" env:"FIXEDHASH_LOADFACTOR"`
	RateLimit   int     `cfg:"ratelimit" env:"FIXEDHASH_RATELIMIT"`
	MetricsAddr string  `cfg:"metricsaddr" env:"FIXEDHASH_METRICSADDR"`
}

var Properties *ServerProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *ServerProperties {
	return &ServerProperties{
		Bind:       "127.0.0.1",
		Port:       6399,
		LogLevel:   "info",
		LoadFactor: 0.75,
	}
}

// SetupConfigProperties 读取配置文件，filename 为空时只使用默认值，最后用环境变量覆盖
func SetupConfigProperties(filename string) error {
	props := defaultProperties()
	if filename != "" {
		file, err := os.Open(filename)
		if err != nil {
			return err
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(file)
		if err := parse(file, props); err != nil {
			return err
		}
	}
	if err := cleanenv.ReadEnv(props); err != nil {
		return err
	}
	Properties = props
	return nil
}

func (p *ServerProperties) Address() string {
	return p.Bind + ":" + strconv.Itoa(p.Port)
}

func parse(reader io.Reader, props *ServerProperties) error {
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fillProperties(props, m)
	return nil
}

func fillProperties(p *ServerProperties, m map[string]string) {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				logger.Warn("ignore config " + key + ": " + err.Error())
				continue
			}
			fieldVal.SetInt(intV)
		case reflect.Float64:
			floatV, err := strconv.ParseFloat(val, 64)
			if err != nil {
				logger.Warn("ignore config " + key + ": " + err.Error())
				continue
			}
			fieldVal.SetFloat(floatV)
		case reflect.Bool:
			fieldVal.SetBool("yes" == val)
		}
	}
}
