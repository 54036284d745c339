package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaer/hr-service/internal/domain"
	"github.com/zaer/hr-service/internal/repository/repotest"
	"github.com/zaer/hr-service/internal/service"
)

const document = `
lookups:
  nationality: [Ethiopian, Kenyan]
  educational_level: [diploma, degree]
divisions:
  - name: Production
    departments:
      - name: Weaving
        units:
          - name: Looms
            sections:
              - name: Maintenance
                sub_sections: [mechanical, electrical]
`

func TestParseRejectsUnknownKinds(t *testing.T) {
	_, err := Parse(strings.NewReader("lookups:\n  planets: [mars]\n"))
	require.Error(t, err)

	_, err = Parse(strings.NewReader("colours: [red]\n"))
	require.Error(t, err)

	f, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Divisions)
}

func TestApplyIsIdempotent(t *testing.T) {
	ctx := context.Background()
	lookups := service.NewLookupService(repotest.NewLookups(), nil, nil)
	org := service.NewOrgService(repotest.NewOrgUnits(), nil, nil)
	seeder := NewSeeder(lookups, org, nil)
	actor := uuid.NewString()

	f, err := Parse(strings.NewReader(document))
	require.NoError(t, err)

	first, err := seeder.Apply(ctx, actor, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{Created: 10}, first)

	second, err := seeder.Apply(ctx, actor, f)
	require.NoError(t, err)
	assert.Equal(t, Summary{Existing: 10}, second)

	nationalities, err := lookups.List(ctx, domain.LookupNationality)
	require.NoError(t, err)
	require.Len(t, nationalities, 2)
	assert.Equal(t, "ethiopian", nationalities[0].Label)

	subSections, err := org.List(ctx, domain.OrgLevelSubSection, nil)
	require.NoError(t, err)
	assert.Len(t, subSections, 2)
}
