// Package doctor implements the environment checks behind `substrip doctor`.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/deepharbor/substrip/internal/config"
	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/messages"
	"github.com/deepharbor/substrip/internal/subfile"
)

// Status is the outcome level of a single check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one row of doctor output.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckInput verifies the input directory exists and lists its .sub files.
func CheckInput(dir string) ([]Result, []string) {
	info, err := os.Stat(dir)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameInput,
			Message:        fmt.Sprintf(messages.DoctorInputDirMissingFmt, dir),
			Recommendation: messages.DoctorInputDirMissingRecommend,
		}}, nil
	}
	if !info.IsDir() {
		return []Result{{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameInput,
			Message:   fmt.Sprintf(messages.DoctorInputNotDirFmt, dir),
		}}, nil
	}

	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameInput,
		Message:   fmt.Sprintf(messages.DoctorInputDirOKFmt, dir),
	}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		results = append(results, Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNameInput,
			Message:   err.Error(),
		})
		return results, nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), ".sub") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameInput,
			Message:        fmt.Sprintf(messages.DoctorNoSubFilesFmt, dir),
			Recommendation: messages.DoctorInputDirMissingRecommend,
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameInput,
			Message:   fmt.Sprintf(messages.DoctorSubFilesFoundFmt, len(names)),
		})
	}
	return results, names
}

// CheckConfig reports whether substrip.toml is usable.
func CheckConfig(dir string) []Result {
	if !config.Exists(dir) {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefault,
		}}
	}
	if _, err := config.Load(dir); err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigInvalidFmt, err),
			Recommendation: messages.DoctorConfigInvalidRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   messages.DoctorConfigOK,
	}}
}

// CheckFiles parses every .sub file into a graph, without transforming it.
func CheckFiles(dir string, names []string) []Result {
	var results []Result
	for _, name := range names {
		results = append(results, checkFile(dir, name))
	}
	return results
}

func checkFile(dir string, name string) Result {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err == nil {
		var document *etree.Document
		if document, err = subfile.Decode(name, data); err == nil {
			_, err = graph.Parse(document)
		}
	}
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameFiles,
			Message:        fmt.Sprintf(messages.DoctorFileBadFmt, name, err),
			Recommendation: messages.DoctorFileBadRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameFiles,
		Message:   fmt.Sprintf(messages.DoctorFileOKFmt, name),
	}
}
