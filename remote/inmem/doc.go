// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

/*
Package inmem implements the remote store interface in memory. It exists so
the engine can be exercised without a real repository behind it, both in tests
and when running locally. Nothing written here survives the process.
*/
package inmem
