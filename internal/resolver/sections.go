package resolver

import (
	"strings"

	"github.com/mfreitag/cvgen/internal/rendering"
	"github.com/mfreitag/cvgen/internal/sources"
)

// buildWorkHistory formats the ordered station records into one LaTeX
// block: a position/employer/location/date-range header per entry, plus
// whichever sub-lists the entry carries.
func buildWorkHistory(set sources.Set) string {
	stations := sources.Items(set.Mapping(sources.Stations), "berufliche_stationen")
	if len(stations) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, record := range stations {
		entry, ok := record.(map[string]any)
		if !ok {
			continue
		}

		position := rendering.EscapeLaTeX(sources.Text(entry["position"]))
		employer := rendering.EscapeLaTeX(sources.Text(entry["unternehmen"]))
		location := sources.Text(entry["ort"])
		start := rendering.EscapeLaTeX(sources.Text(entry["start"]))
		until := rendering.EscapeLaTeX(sources.Text(entry["bis"]))

		sb.WriteString("\\textbf{" + position + "} \\\\\n")
		sb.WriteString(employer)
		if location != "" {
			sb.WriteString(", " + rendering.EscapeLaTeX(location))
		}
		sb.WriteString(" (" + start + " -- " + until + ")\n\n")

		if focus := sources.Items(entry, "schwerpunkte"); len(focus) > 0 {
			sb.WriteString("\\textit{Schwerpunkte:}\n")
			writeItemize(&sb, focus)
		}

		tasks := sources.Items(entry, "aufgaben")
		if len(tasks) > 0 {
			sb.WriteString("\\textit{Aufgaben:}\n")
			writeItemize(&sb, tasks)
		}

		// Single narrative fallback for entries without a task list.
		if activity := sources.Text(entry["tätigkeit"]); activity != "" && len(tasks) == 0 {
			sb.WriteString(rendering.EscapeLaTeX(activity) + "\n")
		}

		if project := sources.Text(entry["hauptprojekt"]); project != "" {
			sb.WriteString("\\textit{Hauptprojekt:} " + rendering.EscapeLaTeX(project) + "\n")
		}

		if projectTasks := sources.Items(entry, "projektaufgaben"); len(projectTasks) > 0 {
			writeItemize(&sb, projectTasks)
		}

		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// buildEducation formats the bildungsweg records from the primary source.
func buildEducation(set sources.Set) string {
	entries := sources.Items(set.Mapping(sources.Basis), "bildungsweg")
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, record := range entries {
		entry, ok := record.(map[string]any)
		if !ok {
			continue
		}

		degree := rendering.EscapeLaTeX(sources.Text(entry["abschluss"]))
		institution := rendering.EscapeLaTeX(sources.Text(entry["institution"]))
		location := sources.Text(entry["ort"])
		year := sources.Text(entry["jahr"])
		grade := sources.Text(entry["gesamtnote"])

		sb.WriteString("\\textbf{" + degree + "} \\\\\n")
		sb.WriteString(institution)
		if location != "" {
			sb.WriteString(", " + rendering.EscapeLaTeX(location))
		}
		if year != "" {
			sb.WriteString(" (" + rendering.EscapeLaTeX(year) + ")")
		}
		sb.WriteString("\n")

		if focus := sources.Items(entry, "schwerpunkte"); len(focus) > 0 {
			escaped := make([]string, len(focus))
			for i, item := range focus {
				escaped[i] = rendering.EscapeLaTeX(sources.Text(item))
			}
			sb.WriteString("\\textit{Schwerpunkte:} " + strings.Join(escaped, ", ") + "\n")
		}

		if grade != "" {
			sb.WriteString("\\textit{Gesamtnote:} " + rendering.EscapeLaTeX(grade) + "\n")
		}

		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// buildProjects formats the projects carrying an explicit truthy inclusion
// flag. Projects default to exclusion; an empty filtered set yields no
// section at all.
func buildProjects(set sources.Set) string {
	var sb strings.Builder
	for _, record := range sources.Items(set.Mapping(sources.Projects), "projects") {
		entry, ok := record.(map[string]any)
		if !ok {
			continue
		}
		if !sources.Truthy(entry["include_in_cv"]) {
			continue
		}

		title := sources.Text(entry["project_de"])
		if title == "" {
			continue
		}

		from := rendering.EscapeLaTeX(sources.Text(entry["period_from"]))
		to := rendering.EscapeLaTeX(sources.Text(entry["period_to"]))
		sb.WriteString("\\textbf{" + rendering.EscapeLaTeX(title) + "} (" + from + " -- " + to + ")\n\n")

		if description := rendering.Transcode(sources.Text(entry["description_de"])); description != "" {
			sb.WriteString(description + "\n\n")
		}

		if tools := sources.Items(entry, "tools_libraries"); len(tools) > 0 {
			names := make([]string, len(tools))
			for i, tool := range tools {
				names[i] = sources.Text(tool)
			}
			sb.WriteString("\\textit{Technologien: " + rendering.EscapeLaTeX(strings.Join(names, ", ")) + "}\n\n")
		}
	}

	return strings.TrimSpace(sb.String())
}

// availabilityFields maps the optional legacy profile fields to their
// rendered labels, in output order.
var availabilityFields = []struct {
	key   string
	label string
}{
	{"available_from", "Verfügbar ab:"},
	{"availability_notice_period", "Kündigungsfrist:"},
	{"willing_to_travel", "Bereitschaft zu Reisen:"},
	{"employment_status", "Beschäftigungsart:"},
}

// buildAvailability derives the availability section from up to four
// independent optional profile fields. Each present field becomes one line;
// zero present fields yield no section.
func buildAvailability(set sources.Set) string {
	profile := sources.Child(set.Mapping(sources.Profile), "profile_data")

	var lines []string
	for _, field := range availabilityFields {
		if !sources.Truthy(profile[field.key]) {
			continue
		}
		value := sources.Localized(profile[field.key])
		if value == "" {
			continue
		}
		lines = append(lines, "\\textbf{"+field.label+"} "+rendering.EscapeLaTeX(value))
	}

	return strings.Join(lines, " \\newline ")
}

// writeItemize writes one itemize environment with one item per element.
func writeItemize(sb *strings.Builder, items []any) {
	sb.WriteString("\\begin{itemize}\n")
	for _, item := range items {
		sb.WriteString("  \\item " + rendering.EscapeLaTeX(sources.Text(item)) + "\n")
	}
	sb.WriteString("\\end{itemize}\n")
}
