package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"moonshine-core/impact"

	"moonshine/internal/logging"
)

const validYAML = `
feedstocks:
  corn:
    name: Corn
    water_intensity_l_per_l: 10
    carbon_intensity_kg_per_l: 1.2
    avg_price_usd_per_l: 0.5
    typical_yield_l_per_hectare: 3800
    water_scarcity_index: 1.2
logistics:
  emissions_per_kg_km:
    TRUCK: 0.0001
    Rail: 0.00003
    ship: 0.00001
`

var _ = Describe("Load", func() {
	var dir string

	writeFile := func(name, body string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Context("with no path", func() {
		It("should load the built-in reference data", func() {
			cfg, err := Load("", logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Source).To(Equal(BuiltinSource))
			Expect(cfg.Catalog.Keys()).To(Equal([]string{"CELLULOSIC", "CORN", "POTATO", "SUGARCANE", "SUGAR_BEET"}))

			corn, err := cfg.Catalog.Lookup("CORN")
			Expect(err).NotTo(HaveOccurred())
			Expect(corn.Name).To(Equal("Corn (Maize)"))
			Expect(corn.CarbonIntensityKgL).To(Equal(1.2))
			Expect(corn.WaterScarcityIndex).To(Equal(1.2))

			Expect(cfg.Logistics.FactorFor(impact.ModeRail)).To(Equal(0.00003))
		})
	})

	Context("with a file", func() {
		It("should upper-case keys and modes", func() {
			cfg, err := Load(writeFile("ok.yaml", validYAML), logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Catalog.Len()).To(Equal(1))
			_, err = cfg.Catalog.Lookup("CORN")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Logistics.FactorFor(impact.ModeShip)).To(Equal(0.00001))
		})

		It("should round-trip through Dump", func() {
			cfg, err := Load(writeFile("ok.yaml", validYAML), logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(cfg.Dump(&buf)).To(Succeed())
			again, err := Load(writeFile("dumped.yaml", buf.String()), logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())
			Expect(again.Document()).To(Equal(cfg.Document()))
		})

		It("should keep dotted feedstock keys whole", func() {
			body := `
feedstocks:
  e85.blend:
    name: E85 Blend
    water_intensity_l_per_l: 3
    carbon_intensity_kg_per_l: 0.4
    avg_price_usd_per_l: 0.9
    typical_yield_l_per_hectare: 3000
    water_scarcity_index: 1
logistics:
  emissions_per_kg_km: {TRUCK: 0.0001, RAIL: 0.00003, SHIP: 0.00001}
`
			cfg, err := Load(writeFile("dotted.yaml", body), logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Catalog.Keys()).To(Equal([]string{"E85.BLEND"}))
			f, err := cfg.Catalog.Lookup("E85.BLEND")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Name).To(Equal("E85 Blend"))
		})

		It("should accept an explicit zero", func() {
			body := `
feedstocks:
  WASTE:
    name: Waste
    water_intensity_l_per_l: 0
    carbon_intensity_kg_per_l: 0
    avg_price_usd_per_l: 0
    typical_yield_l_per_hectare: 0
    water_scarcity_index: 0
logistics:
  emissions_per_kg_km: {TRUCK: 0, RAIL: 0, SHIP: 0}
`
			_, err := Load(writeFile("zero.yaml", body), logging.NewTestLogger())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	DescribeTable("invalid documents",
		func(body, fragment string) {
			_, err := Load(writeFile("bad.yaml", body), logging.NewTestLogger())
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrConfiguration)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(fragment))
		},
		Entry("no feedstocks", "feedstocks: {}\n", "no feedstocks"),
		Entry("missing name", `
feedstocks:
  CORN: {water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "name is required"),
		Entry("missing field", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "water_scarcity_index is required"),
		Entry("negative value", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: -1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "water_intensity_l_per_l must be >= 0"),
		Entry("unknown mode", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1, AIR: 1}
`, `unknown transport mode "AIR"`),
		Entry("missing mode", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1}
`, "logistics"),
		Entry("not yaml", "feedstocks: [unclosed\n", "bad.yaml"),
		Entry("bool for a number", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: true, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "decode"),
		Entry("quoted number", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: "12", carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "decode"),
		Entry("quoted emission factor", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: "0.1", RAIL: 1, SHIP: 1}
`, "decode"),
		Entry("keys differing only by case", `
feedstocks:
  Corn: {name: CornA, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
  CORN: {name: CornB, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 2, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, `duplicate key "CORN" at feedstocks`),
		Entry("mode given twice", `
feedstocks:
  CORN: {name: Corn, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, truck: 2, RAIL: 1, SHIP: 1}
`, "duplicate key"),
		Entry("misspelled field", `
feedstocks:
  CORN: {name: Corn, water_intensty_l_per_l: 1, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "water_intensty_l_per_l"),
		Entry("unknown section", validYAML+"pricing: {}\n", "pricing"),
		Entry("delimiter in key", `
feedstocks:
  "A::B": {name: AB, water_intensity_l_per_l: 1, carbon_intensity_kg_per_l: 1, avg_price_usd_per_l: 1, typical_yield_l_per_hectare: 1, water_scarcity_index: 1}
logistics:
  emissions_per_kg_km: {TRUCK: 1, RAIL: 1, SHIP: 1}
`, "not allowed"),
	)

	It("should fail on a missing file", func() {
		_, err := Load(filepath.Join(dir, "absent.yaml"), logging.NewTestLogger())
		Expect(errors.Is(err, ErrConfiguration)).To(BeTrue())
	})
})
