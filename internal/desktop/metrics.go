package desktop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var openDesktops = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "desktops_open",
	Help: "Number of desktops currently loaded in memory.",
})
