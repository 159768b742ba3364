package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Yuvanesh-03/maverick-backend/internal/config"
	"github.com/Yuvanesh-03/maverick-backend/internal/models"
	apperrors "github.com/Yuvanesh-03/maverick-backend/pkg/errors"
	"github.com/Yuvanesh-03/maverick-backend/pkg/logger"
)

// Judge is the opaque external code runner. The core only consumes
// pass/fail per test case and error presence; tests substitute a stub.
type Judge interface {
	Run(ctx context.Context, code, language string, testCases []models.TestCase, timeLimit, memoryLimit int) (*RunResult, error)
}

type RunResult struct {
	Success     bool         `json:"success"`
	TestResults []TestResult `json:"testResults"`
	Output      string       `json:"output"`
	Error       string       `json:"error,omitempty"`
}

type TestResult struct {
	Passed bool `json:"passed"`
}

// PistonJudge executes code through a Piston-compatible HTTP API.
type PistonJudge struct {
	client *http.Client

	cacheMu sync.RWMutex
	cache   map[string]judgeCacheEntry
}

type judgeCacheEntry struct {
	raw       *pistonExecuteResponse
	timestamp time.Time
}

const judgeCacheTTL = 1 * time.Hour

func NewPistonJudge() *PistonJudge {
	j := &PistonJudge{
		client: &http.Client{Timeout: 30 * time.Second},
		cache:  make(map[string]judgeCacheEntry),
	}

	// Cleanup routine
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			j.cacheMu.Lock()
			for key, entry := range j.cache {
				if time.Since(entry.timestamp) > judgeCacheTTL {
					delete(j.cache, key)
				}
			}
			j.cacheMu.Unlock()
		}
	}()

	return j
}

type pistonExecuteRequest struct {
	Language       string       `json:"language"`
	Version        string       `json:"version"`
	Files          []pistonFile `json:"files"`
	Stdin          string       `json:"stdin"`
	RunTimeout     int          `json:"run_timeout"`      // milliseconds
	CompileTimeout int          `json:"compile_timeout"`  // milliseconds
	RunMemoryLimit int          `json:"run_memory_limit"` // bytes
}

type pistonFile struct {
	Name    string `json:"name,omitempty"`
	Content string `json:"content"`
}

type pistonExecuteResponse struct {
	Language string `json:"language"`
	Version  string `json:"version"`
	Run      struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Code   int    `json:"code"`
		Signal string `json:"signal"`
	} `json:"run"`
}

// Run executes code against every test case and reports per-case pass/fail.
// Success is true only when all cases pass. Transport or API failures wrap
// ErrJudgeExecutionFailed; they never count as a wrong answer.
func (j *PistonJudge) Run(ctx context.Context, code, language string, testCases []models.TestCase, timeLimit, memoryLimit int) (*RunResult, error) {
	result := &RunResult{Success: true}

	if len(testCases) == 0 {
		// No cases to check: a clean run is the whole verdict.
		resp, err := j.execute(ctx, code, language, "", timeLimit, memoryLimit)
		if err != nil {
			return nil, err
		}
		result.Output = resp.Run.Stdout
		if resp.Run.Code != 0 {
			result.Success = false
			result.Error = resp.Run.Stderr
		}
		return result, nil
	}

	for _, tc := range testCases {
		resp, err := j.execute(ctx, code, language, tc.Input, timeLimit, memoryLimit)
		if err != nil {
			return nil, err
		}

		if resp.Run.Code != 0 {
			result.Success = false
			result.Error = resp.Run.Stderr
			result.TestResults = append(result.TestResults, TestResult{Passed: false})
			continue
		}

		passed := normalizeOutput(resp.Run.Stdout) == normalizeOutput(tc.Expected)
		if !passed {
			result.Success = false
		}
		result.Output = resp.Run.Stdout
		result.TestResults = append(result.TestResults, TestResult{Passed: passed})
	}

	return result, nil
}

func (j *PistonJudge) execute(ctx context.Context, code, language, stdin string, timeLimit, memoryLimit int) (*pistonExecuteResponse, error) {
	cacheKey := judgeCacheKey(language, code, stdin)
	j.cacheMu.RLock()
	if entry, ok := j.cache[cacheKey]; ok && time.Since(entry.timestamp) < judgeCacheTTL {
		j.cacheMu.RUnlock()
		logger.Debug().Str("lang", language).Msg("Cache hit for code execution")
		return entry.raw, nil
	}
	j.cacheMu.RUnlock()

	runTimeout := 5000 // default 5s
	if timeLimit > 0 {
		runTimeout = timeLimit * 1000
	}

	runMemory := memoryLimit
	if runMemory > 0 && runMemory < 10000 {
		runMemory = runMemory * 1024 * 1024 // MB to bytes
	} else if runMemory == 0 {
		runMemory = 512 * 1024 * 1024
	}

	reqBody := pistonExecuteRequest{
		Language: normalizeLanguage(language),
		Version:  "*",
		Files: []pistonFile{
			{Name: fileNameFor(language), Content: code},
		},
		Stdin:          stdin,
		RunTimeout:     runTimeout,
		CompileTimeout: 10000,
		RunMemoryLimit: runMemory,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrJudgeExecutionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.AppConfig.JudgeAPIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrJudgeExecutionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := j.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrJudgeExecutionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: judge api returned status %d", apperrors.ErrJudgeExecutionFailed, resp.StatusCode)
	}

	var result pistonExecuteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrJudgeExecutionFailed, err)
	}

	logger.Info().
		Str("lang", language).
		Dur("latency", time.Since(start)).
		Msg("Executed code via judge")

	j.cacheMu.Lock()
	j.cache[cacheKey] = judgeCacheEntry{raw: &result, timestamp: time.Now()}
	j.cacheMu.Unlock()

	return &result, nil
}

func judgeCacheKey(language, code, stdin string) string {
	hash := sha256.Sum256([]byte(language + ":" + code + ":" + stdin))
	return hex.EncodeToString(hash[:])
}

func normalizeOutput(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}

// normalizeLanguage converts frontend language names to judge names.
func normalizeLanguage(lang string) string {
	langMap := map[string]string{
		"typescript": "typescript",
		"javascript": "javascript",
		"python":     "python",
		"go":         "go",
		"cpp":        "c++",
		"c++":        "c++",
		"java":       "java",
		"rust":       "rust",
		"c":          "c",
	}
	if judgeLang, ok := langMap[lang]; ok {
		return judgeLang
	}
	return lang
}

func fileNameFor(lang string) string {
	extMap := map[string]string{
		"typescript": "index.ts",
		"javascript": "index.js",
		"python":     "main.py",
		"go":         "main.go",
		"c++":        "main.cpp",
		"cpp":        "main.cpp",
		"java":       "Main.java",
		"rust":       "main.rs",
		"c":          "main.c",
	}
	if name, ok := extMap[lang]; ok {
		return name
	}
	return "code.txt"
}
