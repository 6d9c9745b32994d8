package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/random"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageType  = packageFlags.String("type", sensors.WorkoutRunning, "workout type code, one of SWM, RUN, WLK")
	flagPackageCount = packageFlags.Int("count", 1, "number of packages to generate")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates random valid sensor packages",
	do:        generatePackages,
	flags:     packageFlags,
}

func generatePackages() {
	for i := 0; i < *flagPackageCount; i++ {
		p, err := randomPackage(*flagPackageType)
		if err != nil {
			fatalf("%s", err)
		}
		fmt.Println(formatPackage(p))
	}
}

func randomPackage(workoutType string) (sensors.Package, error) {
	switch workoutType {
	case sensors.WorkoutSwimming:
		return sensors.Package{Type: workoutType, Data: random.SwimmingData()}, nil
	case sensors.WorkoutRunning:
		return sensors.Package{Type: workoutType, Data: random.RunningData()}, nil
	case sensors.WorkoutWalking:
		return sensors.Package{Type: workoutType, Data: random.WalkingData()}, nil
	}
	return sensors.Package{}, fmt.Errorf("unknown workout type %q", workoutType)
}

// formatPackage renders a package as its code followed by space separated values
func formatPackage(p sensors.Package) string {
	fields := make([]string, 0, len(p.Data)+1)
	fields = append(fields, p.Type)
	for _, v := range p.Data {
		fields = append(fields, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(fields, " ")
}
