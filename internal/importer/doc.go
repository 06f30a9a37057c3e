// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package importer implements the CSV cleaning and import pipeline used by
the catalogctl tool.

The raw catalog export carries list-valued columns (director, cast,
country, listed_in) as comma-separated strings, a free-text duration
column ("90 min" for movies, "2 Seasons" for shows) and columns the graph
never uses (description, date_added). Cleaning normalizes those:

  - list columns split on commas, items trimmed, missing values become
    empty lists
  - rating missing values become the "No rating listed" sentinel
  - duration parses to an integer (minutes or seasons by item type);
    unparseable durations become 0
  - description and date_added are dropped
  - release_year parses to an integer

Cleaned data round-trips through a cleaned CSV (list columns joined with
"|") so the clean and import steps can run separately, matching how the
dataset was originally prepared.

Importing upserts each record through a TitleWriter, merging items by
show_id so re-imports are idempotent.
*/
package importer
