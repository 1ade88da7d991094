package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/eco-farm/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	tuningDoc, err := generateTuningDoc()
	if err != nil {
		fatal(err)
	}

	files := []docFile{
		generateCropsDoc(),
		generateSoilsDoc(),
		generateIrrigationDoc(),
		generateTreatmentsDoc(),
		generateTipsDoc(),
		tuningDoc,
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateCropsDoc() docFile {
	items := game.CropCatalog()

	var b strings.Builder
	b.WriteString("# Crops\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`CropCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total crops: **%d**.\n\n", len(items)))
	b.WriteString("| Type | Name | Growth Days | Water Needs | Temp (°C) | Humidity (%) | Preferred Soil | Yield | Carbon |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, c := range items {
		soils := make([]string, 0, len(c.PreferredSoil))
		for _, s := range c.PreferredSoil {
			soils = append(soils, string(s))
		}
		b.WriteString("| ")
		b.WriteString(escape(string(c.Type)))
		b.WriteString(" | ")
		b.WriteString(escape(c.Name))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(c.GrowthDays))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(c.WaterNeeds))
		b.WriteString(" | ")
		b.WriteString(formatRange(c.OptimalTemp))
		b.WriteString(" | ")
		b.WriteString(formatRange(c.OptimalHumidity))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(soils, ", ")))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(c.YieldPerPlot))
		b.WriteString(" | ")
		b.WriteString(formatFloat(c.CarbonFootprint))
		b.WriteString(" |\n")
	}

	return docFile{Name: "crops.md", Title: "Crops", Content: b.String()}
}

func generateSoilsDoc() docFile {
	items := game.SoilCatalog()

	var b strings.Builder
	b.WriteString("# Soils\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`SoilCatalog`).\n\n")
	b.WriteString("| Type | Name | Description | Suited Crops |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, s := range items {
		crops := game.CropsForSoil(s.Type)
		names := make([]string, 0, len(crops))
		for _, c := range crops {
			names = append(names, string(c))
		}
		b.WriteString("| ")
		b.WriteString(escape(string(s.Type)))
		b.WriteString(" | ")
		b.WriteString(escape(s.Name))
		b.WriteString(" | ")
		b.WriteString(escape(s.Description))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(names, ", ")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "soils.md", Title: "Soils", Content: b.String()}
}

func generateIrrigationDoc() docFile {
	items := game.IrrigationCatalog()

	var b strings.Builder
	b.WriteString("# Irrigation\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`IrrigationCatalog`). Water is added to every plot when the schedule fires.\n\n")
	b.WriteString("| Type | Name | Water / Plot | Carbon | Tip |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, i := range items {
		tip, _ := game.TipFor(game.IrrigationTip(i.Type))
		b.WriteString("| ")
		b.WriteString(escape(string(i.Type)))
		b.WriteString(" | ")
		b.WriteString(escape(i.Name))
		b.WriteString(" | ")
		b.WriteString(formatFloat(i.WaterAmount))
		b.WriteString(" | ")
		b.WriteString(formatFloat(i.CarbonFootprint))
		b.WriteString(" | ")
		b.WriteString(escape(tip))
		b.WriteString(" |\n")
	}

	return docFile{Name: "irrigation.md", Title: "Irrigation", Content: b.String()}
}

func generateTreatmentsDoc() docFile {
	items := game.TreatmentCatalog()
	t := game.DefaultTuning().Treatments

	var b strings.Builder
	b.WriteString("# Treatments\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`TreatmentCatalog`). Treatments only affect planted plots.\n\n")
	b.WriteString("| Type | Name | Description | Effect | Daily Decay |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, tr := range items {
		var effect string
		var decay float64
		switch tr.Type {
		case game.TreatmentPesticide:
			effect = fmt.Sprintf("protection, pest damage -%s", formatFloat(t.PesticideReduction))
			decay = t.ProtectionDecayChance
		case game.TreatmentFertilizer:
			effect = fmt.Sprintf("growth x%s, health +%s", formatFloat(game.DefaultTuning().Growth.FertilizerBoost), formatFloat(t.FertilizerHealthBoost))
			decay = t.FertilizerDecayChance
		}
		b.WriteString("| ")
		b.WriteString(escape(string(tr.Type)))
		b.WriteString(" | ")
		b.WriteString(escape(tr.Name))
		b.WriteString(" | ")
		b.WriteString(escape(tr.Description))
		b.WriteString(" | ")
		b.WriteString(escape(effect))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.0f%%", decay*100))
		b.WriteString(" |\n")
	}

	return docFile{Name: "treatments.md", Title: "Treatments", Content: b.String()}
}

func generateTipsDoc() docFile {
	items := game.TipLibrary()

	var b strings.Builder
	b.WriteString("# Tips\n\n")
	b.WriteString("Source: `internal/game/tips.go` (`TipLibrary`).\n\n")
	b.WriteString(fmt.Sprintf("Total tips: **%d**.\n\n", len(items)))
	b.WriteString("| Trigger | Message |\n")
	b.WriteString("| --- | --- |\n")
	for _, tip := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(tip.Trigger)))
		b.WriteString(" | ")
		b.WriteString(escape(tip.Message))
		b.WriteString(" |\n")
	}

	return docFile{Name: "tips.md", Title: "Tips", Content: b.String()}
}

func generateTuningDoc() (docFile, error) {
	raw, err := yaml.Marshal(game.DefaultTuning())
	if err != nil {
		return docFile{}, fmt.Errorf("marshal default tuning: %w", err)
	}

	var b strings.Builder
	b.WriteString("# Tuning\n\n")
	b.WriteString("Source: `internal/game/tuning.go` (`DefaultTuning`). Override any subset in `configs/tuning.yaml`.\n\n")
	b.WriteString("```yaml\n")
	b.Write(raw)
	b.WriteString("```\n")
	return docFile{Name: "tuning.md", Title: "Tuning", Content: b.String()}, nil
}

func formatRange(r game.Range) string {
	return formatFloat(r.Min) + "-" + formatFloat(r.Max)
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
