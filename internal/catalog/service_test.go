package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avaldez/nookstop-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const housewarePayload = `{
  "1": [
    {"name": {"name-USen": "wooden chair"}, "internal-id": 100, "sell-price": 400,
     "file-name": "FtrWoodenChairS_Remake_0_0", "hha-concept-1": "living room", "hha-series": "wooden", "hha-set": null},
    {"name": {"name-USen": "wooden chair"}, "internal-id": 100, "sell-price": 400,
     "file-name": "FtrWoodenChairS_Remake_1_0", "hha-concept-1": "living room", "hha-series": "wooden", "hha-set": null}
  ],
  "2": [
    {"name": {"name-USen": "cute bed"}, "internal-id": 200, "sell-price": 2400,
     "file-name": "FtrBedCute", "hha-concept-1": "fancy", "hha-series": "cute", "hha-set": "bedroom"}
  ],
  "3": [
    {"name": {"name-USen": "wooden table"}, "internal-id": 300, "sell-price": 1200,
     "file-name": "FtrWoodenTable", "hha-concept-1": "living room", "hha-series": "wooden", "hha-set": null}
  ]
}`

const villagersPayload = `[
  {"name": "Marshal", "species": "Squirrel", "personality": "Smug", "sign": "Virgo",
   "quote": "Keep it real.", "phrase": "sulky", "image_url": "https://example.test/marshal.png"},
  {"name": "Raymond", "species": "Cat", "personality": "Smug", "sign": "Libra",
   "quote": "Hm.", "phrase": "crisp", "image_url": "https://example.test/raymond.png"},
  {"name": "Isabelle", "species": "Dog", "personality": "Normal", "sign": "Sagittarius",
   "quote": "Hello!", "phrase": "yes yes", "image_url": "https://example.test/isabelle.png"}
]`

func newTestCatalog(t *testing.T, pageSize int) Service {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/houseware.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(housewarePayload))
	})
	mux.HandleFunc("/villagers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(villagersPayload))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := NewClient(config.CatalogConfig{
		VillagerBaseURL:    server.URL,
		VillagerAPIKey:     "test-key",
		VillagerAPIVersion: "1.6.0",
		FurnitureURL:       server.URL + "/houseware.json",
		FurnitureImageBase: "https://images.test/furniture",
		RequestTimeout:     2 * time.Second,
	})
	require.NoError(t, err)

	svc, err := NewService(client, config.CatalogConfig{PageSize: pageSize})
	require.NoError(t, err)
	return svc
}

func TestMenuExtractsUniqueCategories(t *testing.T) {
	svc := newTestCatalog(t, 12)

	menu, err := svc.Menu(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Fancy", "Living Room"}, menu.Concepts)
	assert.Equal(t, []string{"Cute", "Wooden"}, menu.Series)
	assert.Equal(t, []string{"Bedroom"}, menu.Sets)
}

func TestListFurnitureFiltersAndDeduplicates(t *testing.T) {
	svc := newTestCatalog(t, 12)

	page, err := svc.ListFurniture(context.Background(), "wooden", 1)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "Wooden Chair", page.Items[0].Name)
	assert.Equal(t, "100", page.Items[0].SKU)
	assert.Equal(t, 400, page.Items[0].Price)
	assert.Contains(t, page.Items[0].ImageURL, "FtrWoodenChairS_Remake_0_0.png")
}

func TestListFurniturePaginates(t *testing.T) {
	svc := newTestCatalog(t, 1)

	page, err := svc.ListFurniture(context.Background(), "wooden", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Wooden Table", page.Items[0].Name)
}

func TestListFurniturePageBeyondEnd(t *testing.T) {
	svc := newTestCatalog(t, 12)

	page, err := svc.ListFurniture(context.Background(), "wooden", 99)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestListVillagersFiltered(t *testing.T) {
	svc := newTestCatalog(t, 12)

	page, err := svc.ListVillagers(context.Background(), VillagerFilter{Personality: "Smug"}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)

	page, err = svc.ListVillagers(context.Background(), VillagerFilter{Personality: "Smug", Species: "Cat"}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Raymond", page.Items[0].Name)
}

func TestVillagerTraits(t *testing.T) {
	svc := newTestCatalog(t, 12)

	traits, err := svc.VillagerTraits(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Cat", "Dog", "Squirrel"}, traits.Species)
	assert.Equal(t, []string{"Normal", "Smug"}, traits.Personalities)
	assert.Equal(t, []string{"Libra", "Sagittarius", "Virgo"}, traits.Signs)
}

func TestFindVillager(t *testing.T) {
	svc := newTestCatalog(t, 12)

	found, err := svc.FindVillager(context.Background(), "marshal")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Marshal", found.Name)

	missing, err := svc.FindVillager(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
