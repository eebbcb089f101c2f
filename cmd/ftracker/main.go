package main

import (
	"fmt"
	"log"

	"ftracker/internal/app"
)

// sensorPackage is one (code, raw values) pair from the device.
type sensorPackage struct {
	workoutType string
	data        []float64
}

func main() {
	packages := []sensorPackage{
		{"SWM", []float64{720, 1, 80, 25, 40}},
		{"RUN", []float64{15000, 1, 75}},
		{"WLK", []float64{9000, 1, 75, 180}},
	}

	for _, p := range packages {
		msg, err := app.ProcessPackage(p.workoutType, p.data)
		if err != nil {
			log.Fatalf("process %s: %v", p.workoutType, err)
		}
		fmt.Println(msg)
	}
}
