package session

import "github.com/NeonArcade/PlayBill/pkg/infra/prometheus"

func observeCommand(command string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	prometheus.SessionCommandsTotal.WithLabelValues(command, result).Inc()
}
