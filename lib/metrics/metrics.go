package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CommandCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fixedhash_commands_total",
		Help: "Total number of executed commands by name",
	}, []string{"command"})

	TableLength = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fixedhash_table_length",
		Help: "Current table length by table",
	}, []string{"table"})

	TableSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fixedhash_table_size",
		Help: "Number of live entries by table",
	}, []string{"table"})

	RehashCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fixedhash_rehash_total",
		Help: "Total number of table growths by table",
	}, []string{"table"})
)

func init() {
	prometheus.MustRegister(CommandCount)
	prometheus.MustRegister(TableLength)
	prometheus.MustRegister(TableSize)
	prometheus.MustRegister(RehashCount)
}

func IncCommand(name string) {
	CommandCount.WithLabelValues(name).Inc()
}

// ObserveTable 记录表的长度和元素数量，长度变大时计一次扩容
func ObserveTable(table string, oldLength, length, size int) {
	if length > oldLength {
		RehashCount.WithLabelValues(table).Inc()
	}
	TableLength.WithLabelValues(table).Set(float64(length))
	TableSize.WithLabelValues(table).Set(float64(size))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
