// Package seed loads reference data and the organization tree from YAML files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/service"
)

// File is the document layout of a seed file.
//
//	lookups:
//	  nationality: [ethiopian, kenyan]
//	divisions:
//	  - name: production
//	    departments:
//	      - name: weaving
//	        units:
//	          - name: looms
//	            sections:
//	              - name: maintenance
//	                sub_sections: [mechanical]
type File struct {
	Lookups   map[domain.LookupKind][]string `yaml:"lookups"`
	Divisions []Division                     `yaml:"divisions"`
}

type Division struct {
	Name        string       `yaml:"name"`
	Departments []Department `yaml:"departments"`
}

type Department struct {
	Name  string `yaml:"name"`
	Units []Unit `yaml:"units"`
}

type Unit struct {
	Name     string    `yaml:"name"`
	Sections []Section `yaml:"sections"`
}

type Section struct {
	Name        string   `yaml:"name"`
	SubSections []string `yaml:"sub_sections"`
}

// Summary counts what a run created and what already existed.
type Summary struct {
	Created  int
	Existing int
}

// Parse decodes a seed document, rejecting unknown keys and lookup kinds.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for kind := range f.Lookups {
		if !kind.Valid() {
			return nil, fmt.Errorf("unknown lookup kind %q", kind)
		}
	}
	return &f, nil
}

// ParseFile reads and decodes the seed file at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Parse(fh)
}

// Seeder creates missing records and leaves existing ones untouched, so a file
// can be applied repeatedly.
type Seeder struct {
	lookups *service.LookupService
	org     *service.OrgService
	logger  *zap.Logger
}

// NewSeeder builds a seeder on top of the services.
func NewSeeder(lookups *service.LookupService, org *service.OrgService, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{lookups: lookups, org: org, logger: logger}
}

// Apply seeds every lookup, then walks the organization tree top down.
func (s *Seeder) Apply(ctx context.Context, actor string, f *File) (Summary, error) {
	var sum Summary
	for _, kind := range domain.LookupKinds {
		for _, label := range f.Lookups[kind] {
			if _, err := s.lookup(ctx, actor, kind, label, &sum); err != nil {
				return sum, err
			}
		}
	}

	for _, division := range f.Divisions {
		divisionID, err := s.lookup(ctx, actor, domain.LookupDivision, division.Name, &sum)
		if err != nil {
			return sum, err
		}
		for _, department := range division.Departments {
			departmentID, err := s.unit(ctx, actor, domain.OrgLevelDepartment, department.Name, divisionID, &sum)
			if err != nil {
				return sum, err
			}
			for _, unit := range department.Units {
				unitID, err := s.unit(ctx, actor, domain.OrgLevelUnit, unit.Name, departmentID, &sum)
				if err != nil {
					return sum, err
				}
				for _, section := range unit.Sections {
					sectionID, err := s.unit(ctx, actor, domain.OrgLevelSection, section.Name, unitID, &sum)
					if err != nil {
						return sum, err
					}
					for _, sub := range section.SubSections {
						if _, err := s.unit(ctx, actor, domain.OrgLevelSubSection, sub, sectionID, &sum); err != nil {
							return sum, err
						}
					}
				}
			}
		}
	}
	s.logger.Info("seed applied", zap.Int("created", sum.Created), zap.Int("existing", sum.Existing))
	return sum, nil
}

func sameLabel(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (s *Seeder) lookup(ctx context.Context, actor string, kind domain.LookupKind, label string, sum *Summary) (string, error) {
	existing, err := s.lookups.List(ctx, kind)
	if err != nil {
		return "", err
	}
	for _, item := range existing {
		if sameLabel(item.Label, label) {
			sum.Existing++
			return item.ID, nil
		}
	}
	item, err := s.lookups.Create(ctx, actor, kind, label)
	if err != nil {
		return "", fmt.Errorf("seed %s %q: %w", kind, label, err)
	}
	sum.Created++
	return item.ID, nil
}

func (s *Seeder) unit(ctx context.Context, actor string, level domain.OrgLevel, name, parentID string, sum *Summary) (string, error) {
	existing, err := s.org.List(ctx, level, &parentID)
	if err != nil {
		return "", err
	}
	for _, unit := range existing {
		if sameLabel(unit.Name, name) {
			sum.Existing++
			return unit.ID, nil
		}
	}
	unit, err := s.org.Create(ctx, actor, level, name, parentID)
	if err != nil {
		return "", fmt.Errorf("seed %s %q: %w", level, name, err)
	}
	sum.Created++
	return unit.ID, nil
}
