package service

import (
	"testing"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/model"
)

func TestApplyBatchPartialFailure(t *testing.T) {
	rows := make([]BulkRow, 5)
	for i := range rows {
		rows[i] = BulkRow{StudentID: uuid.New(), Status: model.AttendanceStatusPresent}
	}
	failing := rows[2].StudentID

	res := applyBatch(rows, func(r BulkRow) (*model.AttendanceModel, error) {
		if r.StudentID == failing {
			return nil, ErrDuplicateAttendance
		}
		return &model.AttendanceModel{AttendanceStudentID: r.StudentID}, nil
	})

	if res.SuccessfulCount != 4 || res.ErrorCount != 1 {
		t.Fatalf("counts = %d/%d, want 4/1", res.SuccessfulCount, res.ErrorCount)
	}
	if len(res.SuccessfulRecords) != 4 {
		t.Errorf("len(SuccessfulRecords) = %d, want 4", len(res.SuccessfulRecords))
	}
	if len(res.FailedRecords) != 1 {
		t.Fatalf("len(FailedRecords) = %d, want 1", len(res.FailedRecords))
	}
	fe := res.FailedRecords[0]
	if fe.StudentID != failing {
		t.Errorf("failed student = %s, want %s", fe.StudentID, failing)
	}
	if fe.Reason != ErrDuplicateAttendance.Error() {
		t.Errorf("reason = %q, want %q", fe.Reason, ErrDuplicateAttendance.Error())
	}
}

func TestApplyBatchAllSucceed(t *testing.T) {
	rows := []BulkRow{
		{StudentID: uuid.New(), Status: model.AttendanceStatusPresent},
		{StudentID: uuid.New(), Status: model.AttendanceStatusAbsent},
	}
	res := applyBatch(rows, func(r BulkRow) (*model.AttendanceModel, error) {
		return &model.AttendanceModel{AttendanceStudentID: r.StudentID, AttendanceStatus: r.Status}, nil
	})
	if res.SuccessfulCount != 2 || res.ErrorCount != 0 {
		t.Fatalf("counts = %d/%d, want 2/0", res.SuccessfulCount, res.ErrorCount)
	}
	// urutan input dipertahankan
	for i, r := range rows {
		if res.SuccessfulRecords[i].AttendanceStudentID != r.StudentID {
			t.Errorf("record[%d] student = %s, want %s", i, res.SuccessfulRecords[i].AttendanceStudentID, r.StudentID)
		}
	}
}

func TestApplyBatchAllFail(t *testing.T) {
	rows := []BulkRow{
		{StudentID: uuid.New(), Status: "Hadir"},
		{StudentID: uuid.New(), Status: "Bolos"},
	}
	res := applyBatch(rows, func(r BulkRow) (*model.AttendanceModel, error) {
		return nil, ErrInvalidStatus
	})
	if res.SuccessfulCount != 0 || res.ErrorCount != 2 {
		t.Fatalf("counts = %d/%d, want 0/2", res.SuccessfulCount, res.ErrorCount)
	}
	if len(res.SuccessfulRecords) != 0 {
		t.Errorf("SuccessfulRecords tidak kosong: %d", len(res.SuccessfulRecords))
	}
}
