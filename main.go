package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var FlagHotReload bool
var FlagPProf bool
var FlagCpuPattern bool
var FlagConfigPath string

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "load shader from "+PatternShaderPath+" and enable reloading it")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.BoolVar(&FlagCpuPattern, "cpu", false, "render patterns on cpu")
	flag.StringVar(&FlagConfigPath, "config", "", "scene config json, embedded default if empty")
}

type App struct {
	ShowDebugConsole bool

	Scene *Scene

	takeScreenshot bool
}

func NewApp(cfg SceneConfig) *App {
	a := new(App)
	a.Scene = NewScene(cfg, FigureRig, FigureClips)
	a.Scene.Screen.UseCPU = FlagCpuPattern
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	eb.SetWindowTitle("lcdscene FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if FlagHotReload && IsKeyJustPressed(ReloadShaderKey) {
		ReloadPatternShader()
	}

	if IsKeyJustPressed(NextStageKey) {
		a.Scene.SkipToNextStage()
	}

	if IsKeyJustPressed(ToggleCpuModeKey) {
		a.Scene.Screen.UseCPU = !a.Scene.Screen.UseCPU
	}

	if IsKeyJustPressed(CopyClockKey) {
		ClipboardWriteText(strconv.FormatFloat(a.Scene.Clock.Seconds(), 'f', 3, 64))
	}

	if IsKeyJustPressed(SeekClockKey) {
		str := strings.TrimSpace(ClipboardReadText())
		if t, err := strconv.ParseFloat(str, 64); err != nil {
			ErrorLogger.Printf("clipboard does not hold a time : %q", str)
		} else if err := a.Scene.Clock.SeekForward(t); err != nil {
			ErrorLogger.Printf("failed to seek clock : %v", err)
		}
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.takeScreenshot = true
	}

	// ==========================
	// update scene
	// ==========================
	a.Scene.Update(UpdateDelta())

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	a.debugPrintScene()

	return nil
}

func (a *App) debugPrintScene() {
	s := a.Scene

	now := s.Clock.Seconds()
	stage := PatternStage(now)

	DebugPrintf("uptime", "%.2f", GlobalTimerNow().Seconds())
	DebugPrintf("clock", "%.2f", now)
	DebugPrintf("stage", "%d %s", stage+1, PatternNames[stage])
	DebugPrint("cpu pattern", s.Screen.UseCPU || PatternShader == nil)
	DebugPuts("wire", ColorToString(s.Lights.Shade(s.Config.wireColor, V3(0, 1, 0))))

	if clip := s.Sequencer.ActiveClip(); clip != nil {
		action := s.Sequencer.ActiveAction()
		DebugPrintf("clip", "%d %s %.2f/%.2f", s.Sequencer.ActiveIndex(), clip.Name, action.Time, clip.Duration)
	}
	DebugPrint("cycles", s.Sequencer.Cycles())

	for i := range s.Transitions.Length {
		tr := s.Transitions.At(i)
		DebugPrintf(fmt.Sprintf("transition %d", i), "%.1fs %s -> %s", tr.At.Seconds(), tr.From, tr.To)
	}
}

func (a *App) Draw(dst *eb.Image) {
	a.Scene.Draw(dst)

	// before the console so it's not in the picture
	if a.takeScreenshot {
		a.takeScreenshot = false
		if name, err := TakeScreenshot(dst); err != nil {
			ErrorLogger.Printf("failed to take screenshot : %v", err)
		} else {
			InfoLogger.Printf("saved screenshot %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		StartPProf()
	}

	cfg, err := LoadSceneConfig(FlagConfigPath)
	if err != nil {
		ErrorLogger.Fatalf("failed to load config : %v", err)
	}

	InitClipboardManager()

	LoadAssets()

	app := NewApp(cfg)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("lcdscene")

	err = eb.RunGame(app)
	app.Scene.Close()

	if err != nil {
		ErrorLogger.Fatal(err)
	}
}
