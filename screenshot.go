package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// ScreenshotName picks pic-<time>.png, adding a counter
// if a file with that name already exists in taken.
func ScreenshotName(now time.Time, taken map[string]bool) string {
	timeStr := now.Format("0102150405")

	filename := fmt.Sprintf("pic-%s.png", timeStr)

	for nameCounter := 2; taken[filename]; nameCounter++ {
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}

	return filename
}

func TakeScreenshot(img *eb.Image) (string, error) {
	dirPath, err := RelativePath("./")
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool)
	for _, entry := range entries {
		taken[entry.Name()] = true
	}

	filename := ScreenshotName(time.Now(), taken)
	fullPath := filepath.Join(dirPath, filename)

	buffer := &bytes.Buffer{}
	imgImg := ImageImageFromEbImage(img)
	err = png.Encode(buffer, imgImg)
	if err != nil {
		return "", err
	}

	toWrite := buffer.Bytes()
	InfoLogger.Printf("bytes len : %d", len(toWrite))

	err = os.WriteFile(fullPath, toWrite, 0644)
	if err != nil {
		return "", err
	}

	return filename, nil
}
