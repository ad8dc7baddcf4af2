// Copyright © 2019 Genome Research Limited
// Author: Sendu Bala <sb10@sanger.ac.uk>.
//
//  This file is part of ssub.
//
//  ssub is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  ssub is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with ssub. If not, see <http://www.gnu.org/licenses/>.

package tools

// This file contains the handling of cloud credentials.

// Credentials are the S3 credentials a tool will read and write cloud data
// with. They are passed through to the tool's container environment and
// engine configuration for the duration of one run, and never stored.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// validate checks that a secret key accompanies the access key; tool is only
// used for error messages. A nil or zero Credentials is valid and means
// anonymous access.
func (c *Credentials) validate(tool string) error {
	if c != nil && c.AccessKey != "" && c.SecretKey == "" {
		return Error{Tool: tool, Err: ErrMissingSecretKey}
	}
	return nil
}

// env returns the environment variable entries to set on the tool's
// container, or nil without credentials.
func (c *Credentials) env() []string {
	if c == nil || c.AccessKey == "" {
		return nil
	}
	return []string{
		"AWS_ACCESS_KEY_ID=" + c.AccessKey,
		"AWS_SECRET_ACCESS_KEY=" + c.SecretKey,
	}
}

// sparkConf returns the engine configuration entries that make the
// credentials available to every S3 filesystem implementation the tools use,
// and to the executor processes the engine spawns, or nil without
// credentials.
func (c *Credentials) sparkConf() []string {
	if c == nil || c.AccessKey == "" {
		return nil
	}
	var conf []string
	for _, scheme := range []string{"s3", "s3n"} {
		conf = append(conf,
			"--conf", "spark.hadoop.fs."+scheme+".awsAccessKeyId="+c.AccessKey,
			"--conf", "spark.hadoop.fs."+scheme+".awsSecretAccessKey="+c.SecretKey)
	}
	return append(conf,
		"--conf", "spark.hadoop.fs.s3a.access.key="+c.AccessKey,
		"--conf", "spark.hadoop.fs.s3a.secret.key="+c.SecretKey,
		"--conf", "spark.executorEnv.AWS_ACCESS_KEY_ID="+c.AccessKey,
		"--conf", "spark.executorEnv.AWS_SECRET_ACCESS_KEY="+c.SecretKey)
}
