package baf

import (
	"github.com/dasnellings/cnvTools/tsv"
	"github.com/pkg/errors"
)

// ReadSnpTable reads a SNP table written by FromVcf.
func ReadSnpTable(path string) ([]Record, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	cols, err := r.Columns("CHROM", "POS", "Normal.REF.DP", "Normal.ALT.DP", "Tumor.REF.DP", "Tumor.ALT.DP")
	if err != nil {
		return nil, err
	}

	var ans []Record
	var rec Record
	for r.Next() {
		if rec.Chrom, err = r.Field(cols[0]); err != nil {
			return nil, err
		}
		if rec.Pos, err = r.Int(cols[1]); err != nil {
			return nil, err
		}
		if rec.Normal.RefDepth, err = r.Int(cols[2]); err != nil {
			return nil, err
		}
		if rec.Normal.AltDepth, err = r.Int(cols[3]); err != nil {
			return nil, err
		}
		if rec.Tumor.RefDepth, err = r.Int(cols[4]); err != nil {
			return nil, err
		}
		if rec.Tumor.AltDepth, err = r.Int(cols[5]); err != nil {
			return nil, err
		}
		ans = append(ans, rec)
	}
	return ans, nil
}

// ReadTable reads a BAF table written by FromVcf.
func ReadTable(path string) ([]Row, error) {
	r, err := tsv.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	cols, err := r.Columns("chrom", "SNP_loc", "control_BAF", "tumor_BAF", "control_doc", "tumor_doc")
	if err != nil {
		return nil, errors.Wrap(err, "not a BAF table")
	}

	var ans []Row
	var row Row
	for r.Next() {
		if row.Chrom, err = r.Field(cols[0]); err != nil {
			return nil, err
		}
		if row.Pos, err = r.Int(cols[1]); err != nil {
			return nil, err
		}
		if row.ControlBaf, err = r.Float(cols[2]); err != nil {
			return nil, err
		}
		if row.TumorBaf, err = r.Float(cols[3]); err != nil {
			return nil, err
		}
		if row.ControlDoc, err = r.Int(cols[4]); err != nil {
			return nil, err
		}
		if row.TumorDoc, err = r.Int(cols[5]); err != nil {
			return nil, err
		}
		ans = append(ans, row)
	}
	return ans, nil
}
