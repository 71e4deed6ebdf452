package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sceneview/internal/assets"
	"sceneview/internal/viewer"

	// Registers scene-file scripts.
	_ "sceneview/internal/scripts"
)

const defaultScene = "assets/scenes/default.scene.json"

const controls = `
Controls:
    MOUSE       - Move camera orientation
    LClick/M    - Enable mouse movement
    WSAD        - forward/back/strafe left/right
    LShift      - 'run'
    E           - up
    Q           - down
    L           - animate light direction
    U           - toggle shadows
    F1          - world inspector
    5/6         - decrease/increase shadow projection width
    7/8         - decrease/increase shadow projection height
    9/0         - decrease/increase shadow projection near/far

`

func main() {
	fmt.Print(controls)

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	scenePath := defaultScene
	if len(os.Args) > 1 {
		scenePath = assets.ResolveScenePath(os.Args[1])
	}

	cfg, err := viewer.LoadConfig("sceneview.yaml")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	viewer.New(cfg, scenePath).Run()
}
